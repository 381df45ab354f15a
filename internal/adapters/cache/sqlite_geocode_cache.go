package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"fuel-route-service/internal/domain"
)

// SQLite-backed persistent store mapping address strings to coordinates.
// Survives restarts, so repeat trips skip the external geocoder entirely.
// Address keys are expected to be normalized by the caller.
type SqliteGeocodeCache struct {
	DB *sql.DB
}

func NewSqliteGeocodeCache(db *sql.DB) *SqliteGeocodeCache {
	return &SqliteGeocodeCache{DB: db}
}

// Lookup fetches the stored coordinates for an address, if present.
func (s *SqliteGeocodeCache) Lookup(ctx context.Context, address string) (domain.Coordinates, bool, error) {
	if s.DB == nil {
		return domain.Coordinates{}, false, errors.New("geocode cache: db is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return domain.Coordinates{}, false, errors.New("get geocode cache: address must not be empty")
	}

	q := `
	SELECT lon, lat
	FROM geocode_cache
	WHERE address = ?;
	`

	var lon, lat float64
	err := s.DB.QueryRowContext(ctx, q, address).Scan(&lon, &lat)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return domain.Coordinates{Lon: lon, Lat: lat}, true, nil
}

// Store persists an address -> coordinate mapping.
func (s *SqliteGeocodeCache) Store(ctx context.Context, address string, coord domain.Coordinates) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return errors.New("insert geocode cache: address must not be empty")
	}

	q := `
	INSERT OR REPLACE INTO geocode_cache (
		address,
		lon,
		lat
	)
	VALUES (?, ?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q, address, coord.Lon, coord.Lat); err != nil {
		return fmt.Errorf("insert geocode cache address=%q: %w", address, err)
	}

	return nil
}
