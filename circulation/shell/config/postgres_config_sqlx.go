package config

import (
	"github.com/jmoiron/sqlx"
)

// PostgresSQLX creates a sqlx.DB for the given DSN, reusing the sql.DB
// tuning from PostgresSQLDB.
func PostgresSQLX(dsn string) (*sqlx.DB, error) {
	db, err := PostgresSQLDB(dsn)
	if err != nil {
		return nil, err
	}

	return sqlx.NewDb(db, "postgres"), nil
}
