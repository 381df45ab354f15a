package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/platform/obs"
)

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// Geocode resolves a free-text US address using OpenRouteService
// (/geocode/search), consulting the persistent store first.
func (o *ORSClient) Geocode(ctx context.Context, address string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "ors.Geocode")(&err)

	norm := o.normalize(address)
	if norm == "" {
		return domain.Coordinates{}, errors.New("geocode: address must be non-empty")
	}

	if o.geocodeStore != nil {
		coord, ok, err := o.geocodeStore.Lookup(ctx, norm)
		if err != nil {
			return domain.Coordinates{}, fmt.Errorf("geocode %q: store lookup: %w", norm, err)
		}
		if ok {
			return coord, nil
		}
	}

	endpoint := o.baseURL + "/geocode/search"

	// The catalog and routes are US-only; biasing the search the same way
	// keeps ambiguous city names from resolving abroad.
	query := norm + ", USA"

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := o.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("text", query)
		q.Set("boundary.country", "US")
		q.Set("size", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: execute request: %w", norm, err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: decode response: %w", norm, err)
	}

	if len(decoded.Features) == 0 {
		return domain.Coordinates{}, fmt.Errorf("no geocode results for %q", norm)
	}

	coords := decoded.Features[0].Geometry.Coordinates
	if len(coords) != 2 {
		return domain.Coordinates{}, fmt.Errorf("invalid coordinate format for %q", norm)
	}

	coord := domain.Coordinates{Lon: coords[0], Lat: coords[1]}

	if o.geocodeStore != nil {
		if err := o.geocodeStore.Store(ctx, norm, coord); err != nil {
			log.Printf("geocode store write failed: %v", err)
		}
	}

	return coord, nil
}
