package handlers

import (
	"net/http"

	"fuel-route-service/internal/api/dto"
	"fuel-route-service/internal/domain"
)

// StationHandler exposes read-only catalog retrieval endpoints over the
// immutable in-memory snapshot.
type StationHandler struct {
	Catalog []domain.Station
}

func (h *StationHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := dto.ListStationsResponse{
		Stations: make([]dto.StationResponse, 0, len(h.Catalog)),
	}
	for _, s := range h.Catalog {
		res.Stations = append(res.Stations, dto.StationResponse{
			StationID:      s.ID,
			Name:           s.Name,
			Address:        s.Address,
			City:           s.City,
			State:          s.State,
			PricePerGallon: s.PricePerGallon,
			Coordinates:    s.Coord.LatLonList(),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
