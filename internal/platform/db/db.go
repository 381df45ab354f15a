package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Open a Postgres connection pool via the pgx stdlib driver.
// Used by dbtool for catalog imports and by deployments that keep the station
// catalog and geocode cache in Postgres instead of local SQLite.
func Open(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("openDB: open postgres database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify postgres connection: %w", err)
	}

	return db, nil
}
