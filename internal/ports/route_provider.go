package ports

import (
	"context"
	"fuel-route-service/internal/domain"
)

// Contract for retrieving a driving route between two coordinates.
type RouteProvider interface {
	// Return the route polyline, total distance and duration from start to end.
	GetRoute(ctx context.Context, start, end domain.Coordinates) (*domain.RoutePolyline, error)
}
