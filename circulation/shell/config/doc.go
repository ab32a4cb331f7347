// Package config provides database configuration helpers for PostgreSQL
// connections used by the circulation engine.
//
// It contains factory functions for creating database connections using
// different PostgreSQL drivers (pgx.Pool, sql.DB, sqlx.DB) plus DSN
// resolution from the environment.
package config
