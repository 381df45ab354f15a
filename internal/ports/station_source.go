package ports

import (
	"context"
	"fuel-route-service/internal/domain"
)

// Port: a boundary for loading the station catalog from a data source.
// The catalog is loaded once at startup and treated as immutable afterwards.
type StationSource interface {
	// Retrieve all stations with their precomputed coordinates.
	ListStations(ctx context.Context) ([]domain.Station, error)
}
