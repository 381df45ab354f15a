package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/platform/obs"
)

// SQLGeocodeCache is the Postgres-backed variant of the persistent geocode
// store, for deployments that share one cache across replicas.
type SQLGeocodeCache struct {
	DB *sql.DB
}

func NewSQLGeocodeCache(db *sql.DB) *SQLGeocodeCache {
	return &SQLGeocodeCache{DB: db}
}

// Lookup fetches the stored coordinates for an address, if present.
func (s *SQLGeocodeCache) Lookup(ctx context.Context, address string) (_ domain.Coordinates, _ bool, err error) {
	defer obs.Time(ctx, "geocode.cache.Lookup")(&err)

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
	WHERE address = $1;
	`

	var lon, lat float64
	err = s.DB.QueryRowContext(ctx, q, address).Scan(&lon, &lat)
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return domain.Coordinates{Lon: lon, Lat: lat}, true, nil
}

// Store persists an address -> coordinate mapping.
func (s *SQLGeocodeCache) Store(ctx context.Context, address string, coord domain.Coordinates) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return errors.New("insert geocode cache: address must not be empty")
	}

	q := `
	INSERT INTO geocode_cache (address, lon, lat)
	VALUES ($1, $2, $3)
	ON CONFLICT (address) DO UPDATE
	SET lon = EXCLUDED.lon,
		lat = EXCLUDED.lat;
	`

	if _, err := s.DB.ExecContext(ctx, q, address, coord.Lon, coord.Lat); err != nil {
		return fmt.Errorf("insert geocode cache address=%q: %w", address, err)
	}

	return nil
}
