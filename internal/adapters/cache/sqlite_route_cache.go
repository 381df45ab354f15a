package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fuel-route-service/internal/domain"
)

// SQLite-backed cache for origin -> destination route results, including the
// polyline geometry. Routing is the most expensive external call, and routes
// between fixed coordinates are stable enough to reuse across requests.
// Keys are expected to be consistent (e.g., formatted coordinate strings)
// by the caller.
type SqliteRouteCache struct {
	DB *sql.DB
}

func NewSqliteRouteCache(db *sql.DB) *SqliteRouteCache {
	return &SqliteRouteCache{DB: db}
}

// Lookup fetches a cached route for the given origin/destination keys.
func (s *SqliteRouteCache) Lookup(ctx context.Context, origin, destination string) (*domain.RoutePolyline, bool, error) {
	if s.DB == nil {
		return nil, false, errors.New("route cache: db is nil")
	}

	if origin == "" || destination == "" {
		return nil, false, errors.New("get route cache: origin and destination must not be empty")
	}

	q := `
	SELECT geometry, distance_miles, duration_hours
	FROM route_cache
	WHERE origin = ? AND destination = ?;
	`

	var geometry string
	var miles, hours float64
	err := s.DB.QueryRowContext(ctx, q, origin, destination).Scan(&geometry, &miles, &hours)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get route cache: query route_cache table: %w", err)
	}

	points, err := decodeGeometry(geometry)
	if err != nil {
		return nil, false, fmt.Errorf("get route cache: %w", err)
	}

	return &domain.RoutePolyline{
		Points:        points,
		DistanceMiles: miles,
		DurationHours: hours,
	}, true, nil
}

// Store persists a route result for the given origin/destination keys.
func (s *SqliteRouteCache) Store(ctx context.Context, origin, destination string, route *domain.RoutePolyline) error {
	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}

	if origin == "" || destination == "" {
		return errors.New("insert route cache: origin and destination must not be empty")
	}

	if route == nil {
		return errors.New("insert route cache: route is nil")
	}

	q := `
	INSERT OR REPLACE INTO route_cache (
		origin,
		destination,
		geometry,
		distance_miles,
		duration_hours
	)
	VALUES (?, ?, ?, ?, ?);
	`

	_, err := s.DB.ExecContext(ctx, q,
		origin, destination, encodeGeometry(route.Points), route.DistanceMiles, route.DurationHours)
	if err != nil {
		return fmt.Errorf("insert route cache %q -> %q: %w", origin, destination, err)
	}

	return nil
}

// Geometry rows store "lat,lon;lat,lon;..." with 5 decimal places, about 1m
// of precision, which is finer than the routing provider itself.
func encodeGeometry(points []domain.Coordinates) string {
	parts := make([]string, 0, len(points))
	for _, p := range points {
		parts = append(parts, fmt.Sprintf("%.5f,%.5f", p.Lat, p.Lon))
	}
	return strings.Join(parts, ";")
}

func decodeGeometry(geometry string) ([]domain.Coordinates, error) {
	if geometry == "" {
		return []domain.Coordinates{}, nil
	}

	parts := strings.Split(geometry, ";")
	points := make([]domain.Coordinates, 0, len(parts))
	for _, part := range parts {
		latStr, lonStr, ok := strings.Cut(part, ",")
		if !ok {
			return nil, fmt.Errorf("decode geometry: malformed point %q", part)
		}

		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return nil, fmt.Errorf("decode geometry: parse lat %q: %w", latStr, err)
		}
		lon, err := strconv.ParseFloat(lonStr, 64)
		if err != nil {
			return nil, fmt.Errorf("decode geometry: parse lon %q: %w", lonStr, err)
		}

		points = append(points, domain.Coordinates{Lat: lat, Lon: lon})
	}

	return points, nil
}
