package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/ports"
)

type PlanTripRequest struct {
	Start         string
	End           string
	Vehicle       domain.VehicleProfile
	BBoxPaddingKm float64
	MaxCorridorKm float64
}

// The terminal artifact of one planning request: the resolved route plus the
// fuel stop plan computed over it.
type TripPlan struct {
	Start      string
	End        string
	StartCoord domain.Coordinates
	EndCoord   domain.Coordinates
	Route      *domain.RoutePolyline
	Result     *domain.PlanResult
}

// PlanFuelTrip runs a full planning request end to end: resolve endpoints,
// fetch the route, then filter -> project -> plan over the catalog snapshot.
//
// The two external calls (geocoding, routing) happen up front; everything
// after them is pure computation over in-memory data, so concurrent requests
// over the same immutable catalog need no coordination.
func PlanFuelTrip(
	ctx context.Context,
	req PlanTripRequest,
	geocoder ports.Geocoder,
	routes ports.RouteProvider,
	catalog []domain.Station,
) (*TripPlan, error) {
	start := strings.TrimSpace(req.Start)
	end := strings.TrimSpace(req.End)
	if start == "" || end == "" {
		return nil, errors.New("plan trip: start and end must be non-empty")
	}

	if err := req.Vehicle.Validate(); err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	startCoord, err := geocoder.Geocode(ctx, start)
	if err != nil {
		return nil, fmt.Errorf("plan trip: geocode start %q: %w", start, err)
	}

	endCoord, err := geocoder.Geocode(ctx, end)
	if err != nil {
		return nil, fmt.Errorf("plan trip: geocode end %q: %w", end, err)
	}

	route, err := routes.GetRoute(ctx, startCoord, endCoord)
	if err != nil {
		return nil, fmt.Errorf("plan trip: get route %q -> %q: %w", start, end, err)
	}

	if route == nil || len(route.Points) < 2 {
		return nil, fmt.Errorf("plan trip: %w", domain.ErrEmptyRoute)
	}

	candidates := FilterCorridor(catalog, route, req.BBoxPaddingKm, req.MaxCorridorKm)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("plan trip: %w", domain.ErrNoStationsInCorridor)
	}

	projected := ProjectStations(candidates, route)

	result, err := PlanFuelStops(projected, route.DistanceMiles, req.Vehicle)
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	return &TripPlan{
		Start:      start,
		End:        end,
		StartCoord: startCoord,
		EndCoord:   endCoord,
		Route:      route,
		Result:     result,
	}, nil
}
