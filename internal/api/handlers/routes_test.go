package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fuel-route-service/internal/adapters/routing"
	"fuel-route-service/internal/api/dto"
	"fuel-route-service/internal/domain"
)

func testHandler() *RouteHandler {
	catalog := []domain.Station{
		{ID: "101", Name: "First Fuel", Address: "I-70 EXIT 1", City: "Alpha", State: "KS",
			PricePerGallon: 3.20, Coord: domain.Coordinates{Lat: 0.5, Lon: 0.1}},
		{ID: "102", Name: "Mid Fuel", Address: "I-70 EXIT 2", City: "Beta", State: "KS",
			PricePerGallon: 2.95, Coord: domain.Coordinates{Lat: 1.0, Lon: 0.1}},
		{ID: "103", Name: "Last Fuel", Address: "I-70 EXIT 3", City: "Gamma", State: "KS",
			PricePerGallon: 3.40, Coord: domain.Coordinates{Lat: 1.5, Lon: -0.1}},
	}

	return &RouteHandler{
		Geocoder: &routing.MockGeocoder{
			Coords: map[string]domain.Coordinates{
				"Equator City": {Lat: 0, Lon: 0},
				"North Town":   {Lat: 2, Lon: 0},
			},
		},
		Routes: &routing.MockRouteProvider{
			Route: &domain.RoutePolyline{
				Points: []domain.Coordinates{
					{Lat: 0, Lon: 0},
					{Lat: 1, Lon: 0},
					{Lat: 2, Lon: 0},
				},
				DistanceMiles: 200,
				DurationHours: 3.4,
			},
		},
		Catalog:        catalog,
		DefaultVehicle: domain.DefaultVehicleProfile(),
	}
}

func postRoute(t *testing.T, h *RouteHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/route", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Plan(rec, req)
	return rec
}

func TestRouteHandlerPlan(t *testing.T) {
	h := testHandler()

	rec := postRoute(t, h, `{"start":"Equator City","end":"North Town","range_miles":80,"mpg":10}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.RouteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.Route.DistanceMiles != 200 {
		t.Errorf("distance_miles = %v, want 200", res.Route.DistanceMiles)
	}
	if len(res.FuelStops) != 3 {
		t.Fatalf("expected 3 fuel stops, got %d", len(res.FuelStops))
	}
	if res.FuelStops[0].Address != "I-70 EXIT 1, Alpha, KS" {
		t.Errorf("stop address = %q", res.FuelStops[0].Address)
	}
	if res.VehicleSpecs.RangeMiles != 80 || res.VehicleSpecs.MPG != 10 {
		t.Errorf("vehicle specs = %+v", res.VehicleSpecs)
	}
}

func TestRouteHandlerValidation(t *testing.T) {
	h := testHandler()

	cases := []struct {
		name string
		body string
		want int
	}{
		{"missing start", `{"end":"North Town"}`, http.StatusBadRequest},
		{"bad json", `{`, http.StatusBadRequest},
		{"unknown field", `{"start":"a","end":"b","bogus":1}`, http.StatusBadRequest},
		{"negative range", `{"start":"Equator City","end":"North Town","range_miles":-5}`, http.StatusBadRequest},
	}

	for _, tc := range cases {
		if rec := postRoute(t, h, tc.body); rec.Code != tc.want {
			t.Errorf("%s: status = %d, want %d", tc.name, rec.Code, tc.want)
		}
	}
}

func TestRouteHandlerNoStations(t *testing.T) {
	h := testHandler()
	h.Catalog = []domain.Station{
		{ID: "9", City: "Remote", State: "AK", Coord: domain.Coordinates{Lat: 60, Lon: -150}, PricePerGallon: 4},
	}

	rec := postRoute(t, h, `{"start":"Equator City","end":"North Town"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestRouteHandlerUnreachableGap(t *testing.T) {
	h := testHandler()

	// A 40-mile tank cannot reach the first station near mile 50.
	rec := postRoute(t, h, `{"start":"Equator City","end":"North Town","range_miles":40,"mpg":10}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "no reachable fuel station") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestRouteHandlerMethodNotAllowed(t *testing.T) {
	h := testHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/route", nil)
	rec := httptest.NewRecorder()
	h.Plan(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
