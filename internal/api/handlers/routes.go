package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"fuel-route-service/internal/adapters/routing"
	"fuel-route-service/internal/api/dto"
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/ports"
	"fuel-route-service/internal/services"
)

// Thin the displayed polyline to every 10th point; map rendering does not
// need full directions resolution.
const displayPolylineStep = 10

type RouteHandler struct {
	Geocoder       ports.Geocoder
	Routes         ports.RouteProvider
	Catalog        []domain.Station
	DefaultVehicle domain.VehicleProfile
	BBoxPaddingKm  float64
	MaxCorridorKm  float64
}

// Plan computes the cheapest refueling stops for a start/end address pair.
// It coordinates geocoding, routing and the planning pipeline, then shapes
// the result for the wire (rounding happens only here).
func (h *RouteHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if req.Start == "" || req.End == "" {
		writeError(w, r, http.StatusBadRequest, "both start and end locations are required")
		return
	}

	vehicle := h.DefaultVehicle
	if req.RangeMiles != 0 {
		vehicle.RangeMiles = req.RangeMiles
	}
	if req.MPG != 0 {
		vehicle.MPG = req.MPG
	}
	if err := vehicle.Validate(); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	svcReq := services.PlanTripRequest{
		Start:         req.Start,
		End:           req.End,
		Vehicle:       vehicle,
		BBoxPaddingKm: h.BBoxPaddingKm,
		MaxCorridorKm: h.MaxCorridorKm,
	}

	trip, err := services.PlanFuelTrip(r.Context(), svcReq, h.Geocoder, h.Routes, h.Catalog)
	if err != nil {
		h.writePlanError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, buildRouteResponse(trip))
}

// writePlanError maps core failure kinds onto HTTP statuses: coverage and
// range gaps are 404s the client can explain to the user, everything else is
// an internal error.
func (h *RouteHandler) writePlanError(w http.ResponseWriter, r *http.Request, err error) {
	var unreachable *domain.UnreachableDestinationError

	switch {
	case errors.Is(err, domain.ErrNoStationsInCorridor):
		writeError(w, r, http.StatusNotFound, domain.ErrNoStationsInCorridor.Error())
	case errors.As(err, &unreachable):
		writeError(w, r, http.StatusNotFound, unreachable.Error())
	case errors.Is(err, domain.ErrInvalidVehicleProfile):
		writeError(w, r, http.StatusBadRequest, domain.ErrInvalidVehicleProfile.Error())
	default:
		log.Printf("plan route failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func buildRouteResponse(trip *services.TripPlan) dto.RouteResponse {
	coords := make([][]float64, 0, len(trip.Route.Points))
	for _, p := range trip.Route.Points {
		coords = append(coords, p.LatLonList())
	}

	stops := make([]dto.FuelStopResponse, 0, len(trip.Result.Stops))
	for _, s := range trip.Result.Stops {
		stops = append(stops, dto.FuelStopResponse{
			StationName:            s.Station.Name,
			Address:                fmt.Sprintf("%s, %s, %s", s.Station.Address, s.Station.City, s.Station.State),
			City:                   s.Station.City,
			State:                  s.Station.State,
			PricePerGallon:         round2(s.PricePerGallon),
			Gallons:                round2(s.Gallons),
			Cost:                   round2(s.Cost),
			Coordinates:            s.Station.Coord.LatLonList(),
			DistanceFromStartMiles: round2(s.DistanceFromStartMiles),
		})
	}

	return dto.RouteResponse{
		Route: dto.RouteSummary{
			Start:           trip.Start,
			End:             trip.End,
			DistanceMiles:   round2(trip.Route.DistanceMiles),
			DistanceKm:      round2(trip.Route.DistanceMiles * 1.60934),
			DurationHours:   round2(trip.Route.DurationHours),
			Coordinates:     coords,
			EncodedPolyline: routing.EncodeDisplayPolyline(trip.Route.Points, displayPolylineStep),
		},
		FuelStops:        stops,
		TotalFuelGallons: round2(trip.Result.TotalGallons),
		TotalFuelCost:    round2(trip.Result.TotalCost),
		VehicleSpecs: dto.VehicleSpecs{
			MPG:        trip.Result.Vehicle.MPG,
			RangeMiles: trip.Result.Vehicle.RangeMiles,
		},
	}
}
