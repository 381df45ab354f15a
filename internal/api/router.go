package api

import (
	"net/http"

	"fuel-route-service/internal/api/handlers"
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/ports"
)

// RouterConfig carries the planning defaults the handlers apply when a
// request does not override them.
type RouterConfig struct {
	DefaultVehicle domain.VehicleProfile
	BBoxPaddingKm  float64
	MaxCorridorKm  float64
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	catalog []domain.Station,
	geocoder ports.Geocoder,
	routes ports.RouteProvider,
	cfg RouterConfig,
) http.Handler {
	mux := http.NewServeMux()

	stationHandler := &handlers.StationHandler{Catalog: catalog}
	routeHandler := &handlers.RouteHandler{
		Geocoder:       geocoder,
		Routes:         routes,
		Catalog:        catalog,
		DefaultVehicle: cfg.DefaultVehicle,
		BBoxPaddingKm:  cfg.BBoxPaddingKm,
		MaxCorridorKm:  cfg.MaxCorridorKm,
	}

	mux.HandleFunc("/api/health", handlers.Health)
	mux.HandleFunc("/api/stations", stationHandler.List)
	mux.HandleFunc("/api/route", routeHandler.Plan)

	return loggingMiddleware(mux)
}
