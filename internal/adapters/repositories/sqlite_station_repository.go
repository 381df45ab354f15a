package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fuel-route-service/internal/domain"
)

// SQLite-backed implementation of the StationSource port.
type SqliteStationRepository struct{ DB *sql.DB }

func NewSqliteStationRepository(db *sql.DB) *SqliteStationRepository {
	return &SqliteStationRepository{DB: db}
}

// Return all stations stored in the database, ordered by id for a stable
// catalog snapshot.
func (s *SqliteStationRepository) ListStations(ctx context.Context) ([]domain.Station, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite station repository: DB is nil")
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
