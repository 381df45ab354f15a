package routing

import (
	"context"
	"fmt"

	"fuel-route-service/internal/domain"
)

// MockGeocoder resolves addresses from a fixed map and counts calls.
type MockGeocoder struct {
	Coords map[string]domain.Coordinates
	Calls  int
}

func (m *MockGeocoder) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	m.Calls++
	c, ok := m.Coords[address]
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("no geocode result for %q", address)
	}
	return c, nil
}

// MockRouteProvider returns a fixed route regardless of endpoints.
type MockRouteProvider struct {
	Route *domain.RoutePolyline
	Err   error
}

func (m *MockRouteProvider) GetRoute(ctx context.Context, start, end domain.Coordinates) (*domain.RoutePolyline, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Route, nil
}
