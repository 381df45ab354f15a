package services

import (
	"context"
	"errors"
	"testing"

	"fuel-route-service/internal/adapters/routing"
	"fuel-route-service/internal/domain"
)

func testCatalog() []domain.Station {
	// Stations hugging the meridian route at roughly miles 50, 100 and 150
	// of a 200-mile trip.
	return []domain.Station{
		{ID: "101", Name: "First Fuel", City: "Alpha", State: "KS", PricePerGallon: 3.20,
			Coord: domain.Coordinates{Lat: 0.5, Lon: 0.1}},
		{ID: "102", Name: "Mid Fuel", City: "Beta", State: "KS", PricePerGallon: 2.95,
			Coord: domain.Coordinates{Lat: 1.0, Lon: 0.1}},
		{ID: "103", Name: "Last Fuel", City: "Gamma", State: "KS", PricePerGallon: 3.40,
			Coord: domain.Coordinates{Lat: 1.5, Lon: -0.1}},
	}
}

func TestPlanFuelTrip(t *testing.T) {
	geocoder := &routing.MockGeocoder{
		Coords: map[string]domain.Coordinates{
			"Equator City": {Lat: 0, Lon: 0},
			"North Town":   {Lat: 2, Lon: 0},
		},
	}
	routes := &routing.MockRouteProvider{Route: meridianRoute(200)}

	req := PlanTripRequest{
		Start:   "Equator City",
		End:     "North Town",
		Vehicle: domain.VehicleProfile{RangeMiles: 80, MPG: 10},
	}

	trip, err := PlanFuelTrip(context.Background(), req, geocoder, routes, testCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if trip.StartCoord != (domain.Coordinates{Lat: 0, Lon: 0}) {
		t.Errorf("start coord = %+v", trip.StartCoord)
	}
	if trip.Route.DistanceMiles != 200 {
		t.Errorf("route distance = %v, want 200", trip.Route.DistanceMiles)
	}

	// Range 80 forces a stop in each of the three windows.
	if len(trip.Result.Stops) != 3 {
		t.Fatalf("expected 3 stops, got %d", len(trip.Result.Stops))
	}
	wantIDs := []string{"101", "102", "103"}
	for i, stop := range trip.Result.Stops {
		if stop.Station.ID != wantIDs[i] {
			t.Errorf("stop %d station = %s, want %s", i, stop.Station.ID, wantIDs[i])
		}
	}
}

func TestPlanFuelTripIsDeterministic(t *testing.T) {
	geocoder := &routing.MockGeocoder{
		Coords: map[string]domain.Coordinates{
			"Equator City": {Lat: 0, Lon: 0},
			"North Town":   {Lat: 2, Lon: 0},
		},
	}
	routes := &routing.MockRouteProvider{Route: meridianRoute(200)}
	catalog := testCatalog()

	req := PlanTripRequest{
		Start:   "Equator City",
		End:     "North Town",
		Vehicle: domain.VehicleProfile{RangeMiles: 80, MPG: 10},
	}

	first, err := PlanFuelTrip(context.Background(), req, geocoder, routes, catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Identical inputs must produce identical stops and totals, run after run.
	for i := 0; i < 3; i++ {
		again, err := PlanFuelTrip(context.Background(), req, geocoder, routes, catalog)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(again.Result.Stops) != len(first.Result.Stops) {
			t.Fatalf("stop count changed between runs: %d vs %d",
				len(again.Result.Stops), len(first.Result.Stops))
		}
		for j := range again.Result.Stops {
			if again.Result.Stops[j] != first.Result.Stops[j] {
				t.Fatalf("stop %d changed between runs: %+v vs %+v",
					j, again.Result.Stops[j], first.Result.Stops[j])
			}
		}
		if again.Result.TotalCost != first.Result.TotalCost ||
			again.Result.TotalGallons != first.Result.TotalGallons {
			t.Fatalf("totals changed between runs")
		}
	}
}

func TestPlanFuelTripEmptyRoute(t *testing.T) {
	geocoder := &routing.MockGeocoder{
		Coords: map[string]domain.Coordinates{
			"A": {Lat: 0, Lon: 0},
			"B": {Lat: 1, Lon: 1},
		},
	}
	routes := &routing.MockRouteProvider{
		Route: &domain.RoutePolyline{Points: []domain.Coordinates{{Lat: 0, Lon: 0}}},
	}

	req := PlanTripRequest{Start: "A", End: "B", Vehicle: domain.DefaultVehicleProfile()}

	_, err := PlanFuelTrip(context.Background(), req, geocoder, routes, testCatalog())
	if !errors.Is(err, domain.ErrEmptyRoute) {
		t.Fatalf("expected ErrEmptyRoute, got %v", err)
	}
}

func TestPlanFuelTripNoStationsInCorridor(t *testing.T) {
	geocoder := &routing.MockGeocoder{
		Coords: map[string]domain.Coordinates{
			"A": {Lat: 0, Lon: 0},
			"B": {Lat: 2, Lon: 0},
		},
	}
	routes := &routing.MockRouteProvider{Route: meridianRoute(200)}

	// Catalog exists, but nothing near this route.
	catalog := []domain.Station{
		{ID: "201", City: "Remote", State: "AK", Coord: domain.Coordinates{Lat: 60, Lon: -150}, PricePerGallon: 4.0},
	}

	req := PlanTripRequest{Start: "A", End: "B", Vehicle: domain.DefaultVehicleProfile()}

	_, err := PlanFuelTrip(context.Background(), req, geocoder, routes, catalog)
	if !errors.Is(err, domain.ErrNoStationsInCorridor) {
		t.Fatalf("expected ErrNoStationsInCorridor, got %v", err)
	}
}

func TestPlanFuelTripValidatesInput(t *testing.T) {
	geocoder := &routing.MockGeocoder{Coords: map[string]domain.Coordinates{}}
	routes := &routing.MockRouteProvider{Route: meridianRoute(200)}

	req := PlanTripRequest{Start: "  ", End: "B", Vehicle: domain.DefaultVehicleProfile()}
	if _, err := PlanFuelTrip(context.Background(), req, geocoder, routes, nil); err == nil {
		t.Error("expected error for blank start")
	}
	if geocoder.Calls != 0 {
		t.Errorf("geocoder called %d times for invalid input", geocoder.Calls)
	}

	req = PlanTripRequest{
		Start:   "A",
		End:     "B",
		Vehicle: domain.VehicleProfile{RangeMiles: -10, MPG: 10},
	}
	if _, err := PlanFuelTrip(context.Background(), req, geocoder, routes, nil); !errors.Is(err, domain.ErrInvalidVehicleProfile) {
		t.Error("expected ErrInvalidVehicleProfile for negative range")
	}
}
