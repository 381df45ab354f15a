package ports

import (
	"context"
	"fuel-route-service/internal/domain"
)

// Contract for resolving a free-text address to coordinates.
type Geocoder interface {
	// Return the best-match coordinates for the given address.
	Geocode(ctx context.Context, address string) (domain.Coordinates, error)
}

// Optional persistent address -> coordinate store consulted by geocoding
// adapters before issuing external calls.
type GeocodeStore interface {
	// Lookup returns the stored coordinates and whether the address was found.
	Lookup(ctx context.Context, address string) (domain.Coordinates, bool, error)
	// Store persists an address -> coordinate mapping.
	Store(ctx context.Context, address string, coord domain.Coordinates) error
}
