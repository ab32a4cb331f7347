package config

import (
	"database/sql"
	"time"

	_ "github.com/lib/pq" // registers the "postgres" driver
)

// PostgresSQLDB creates a sql.DB for the given DSN using the lib/pq driver,
// with connection tuning matching the pgxpool defaults.
func PostgresSQLDB(dsn string) (*sql.DB, error) {
	const defaultMaxOpenConnections = 8
	const defaultMaxIdleConnections = 2
	const defaultConnMaxLifetime = time.Hour
	const defaultConnMaxIdleTime = time.Minute * 5

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(defaultMaxOpenConnections)
	db.SetMaxIdleConns(defaultMaxIdleConnections)
	db.SetConnMaxLifetime(defaultConnMaxLifetime)
	db.SetConnMaxIdleTime(defaultConnMaxIdleTime)

	return db, nil
}
