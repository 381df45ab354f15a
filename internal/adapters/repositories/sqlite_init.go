package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createStationsQuery := `
	CREATE TABLE IF NOT EXISTS stations (
		station_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		address TEXT NOT NULL,
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		price_per_gallon REAL NOT NULL,
		lon REAL NOT NULL,
		lat REAL NOT NULL
	);
	`

	createGeocodeCacheQuery := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
		address TEXT PRIMARY KEY,
		lon REAL NOT NULL,
		lat REAL NOT NULL
	);
	`

	createRouteCacheQuery := `
	CREATE TABLE IF NOT EXISTS route_cache (
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		geometry TEXT NOT NULL,
		distance_miles REAL NOT NULL,
		duration_hours REAL NOT NULL,
		PRIMARY KEY (origin, destination)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_stations_state
	ON stations(state);
	`

	statements := []string{
		createStationsQuery,
		createGeocodeCacheQuery,
		createRouteCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the stations table from the fuel price CSV. Coordinates are
// computed once here, so every consumer of the table sees the same positions.
func SeedFromCSV(db *sql.DB, csvPath string) error {
	f, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("seed stations: open %q: %w", csvPath, err)
	}
	defer f.Close()

	stations, err := ReadStationsCSV(f)
	if err != nil {
		return fmt.Errorf("seed stations: parse %q: %w", csvPath, err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed stations: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO stations (
		station_id,
		name,
		address,
		city,
		state,
		price_per_gallon,
		lon,
		lat
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed stations: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range stations {
		_, err := stmt.Exec(s.ID, s.Name, s.Address, s.City, s.State, s.PricePerGallon, s.Coord.Lon, s.Coord.Lat)
		if err != nil {
			return fmt.Errorf("seed stations: insert station_id=%s: %w", s.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed stations: commit tx: %w", err)
	}

	return nil
}
