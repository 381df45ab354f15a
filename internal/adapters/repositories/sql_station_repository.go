package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/platform/obs"
)

// SQLStationRepository is the Postgres-backed implementation of the
// StationSource port.
type SQLStationRepository struct{ DB *sql.DB }

func NewSQLStationRepository(db *sql.DB) *SQLStationRepository {
	return &SQLStationRepository{DB: db}
}

// Return all stations stored in the database, ordered by id.
func (s *SQLStationRepository) ListStations(ctx context.Context) (_ []domain.Station, err error) {
	defer obs.Time(ctx, "stations.ListStations")(&err)

	if s.DB == nil {
		return nil, errors.New("station repository: DB is nil")
	}

	query := `
	SELECT
		station_id,
		name,
		address,
		city,
		state,
		price_per_gallon,
		lon,
		lat
	FROM stations
	ORDER BY station_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stations: query stations table: %w", err)
	}
	defer rows.Close()

	stations := make([]domain.Station, 0, 1024)
	for rows.Next() {
		var st domain.Station
		err := rows.Scan(&st.ID, &st.Name, &st.Address, &st.City, &st.State,
			&st.PricePerGallon, &st.Coord.Lon, &st.Coord.Lat)
		if err != nil {
			return nil, fmt.Errorf("list stations: scan row: %w", err)
		}
		stations = append(stations, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stations: row iteration: %w", err)
	}

	return stations, nil
}

// Initialize the Postgres schema for catalog imports.
func InitPostgresSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	statements := []string{
		`CREATE TABLE IF NOT EXISTS stations (
			station_id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			address TEXT NOT NULL,
			city TEXT NOT NULL,
			state TEXT NOT NULL,
			price_per_gallon DOUBLE PRECISION NOT NULL,
			lon DOUBLE PRECISION NOT NULL,
			lat DOUBLE PRECISION NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS geocode_cache (
			address TEXT PRIMARY KEY,
			lon DOUBLE PRECISION NOT NULL,
			lat DOUBLE PRECISION NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_stations_state ON stations(state);`,
	}

	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init postgres schema: exec statement #%d: %w", i+1, err)
		}
	}

	return nil
}

// ImportCSVPostgres loads the fuel price CSV into the Postgres stations
// table, computing deterministic coordinates at import time.
func ImportCSVPostgres(ctx context.Context, db *sql.DB, csvPath string) error {
	f, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("import stations: open %q: %w", csvPath, err)
	}
	defer f.Close()

	stations, err := ReadStationsCSV(f)
	if err != nil {
		return fmt.Errorf("import stations: parse %q: %w", csvPath, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("import stations: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO stations (station_id, name, address, city, state, price_per_gallon, lon, lat)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (station_id) DO UPDATE
	SET name = EXCLUDED.name,
		address = EXCLUDED.address,
		city = EXCLUDED.city,
		state = EXCLUDED.state,
		price_per_gallon = EXCLUDED.price_per_gallon,
		lon = EXCLUDED.lon,
		lat = EXCLUDED.lat;
	`)
	if err != nil {
		return fmt.Errorf("import stations: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range stations {
		_, err := stmt.ExecContext(ctx, s.ID, s.Name, s.Address, s.City, s.State,
			s.PricePerGallon, s.Coord.Lon, s.Coord.Lat)
		if err != nil {
			return fmt.Errorf("import stations: insert station_id=%s: %w", s.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("import stations: commit tx: %w", err)
	}

	return nil
}
