// Package storedouble provides an in-memory record store for tests. It
// enforces the same version guards and uniqueness rules as the Postgres
// engine and supports error injection for retry paths.
package storedouble
