package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/platform/obs"
	"fuel-route-service/internal/spatial"
)

type directionsRequest struct {
	Coordinates      [][]float64 `json:"coordinates"`
	GeometrySimplify bool        `json:"geometry_simplify"`
}

type directionsResponse struct {
	Routes []struct {
		Summary struct {
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
		} `json:"summary"`
		Geometry json.RawMessage `json:"geometry"`
	} `json:"routes"`
}

// GetRoute retrieves a driving route between two coordinates using the
// OpenRouteService directions endpoint, consulting the route cache first.
// Distances are converted from meters to miles, durations to hours.
func (o *ORSClient) GetRoute(ctx context.Context, start, end domain.Coordinates) (_ *domain.RoutePolyline, err error) {
	defer obs.Time(ctx, "ors.GetRoute")(&err)

	origin := coordKey(start)
	destination := coordKey(end)

	if o.routeCache != nil {
		route, ok, err := o.routeCache.Lookup(ctx, origin, destination)
		if err != nil {
			return nil, fmt.Errorf("get route: cache lookup: %w", err)
		}
		if ok {
			return route, nil
		}
	}

	endpoint := fmt.Sprintf("%s/v2/directions/%s", o.baseURL, o.profile)

	bodyObj := directionsRequest{
		Coordinates:      [][]float64{start.CoordsToList(), end.CoordsToList()},
		GeometrySimplify: true,
	}

	payload, err := json.Marshal(bodyObj)
	if err != nil {
		return nil, fmt.Errorf("marshal directions request: %w", err)
	}

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	})
	if err != nil {
		return nil, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	var dr directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return nil, fmt.Errorf("decode directions response: %w", err)
	}

	if len(dr.Routes) == 0 {
		return nil, fmt.Errorf("no route found between %s and %s", origin, destination)
	}

	points, err := parseGeometry(dr.Routes[0].Geometry)
	if err != nil {
		return nil, fmt.Errorf("parse route geometry: %w", err)
	}

	route := &domain.RoutePolyline{
		Points:        points,
		DistanceMiles: dr.Routes[0].Summary.Distance / 1000 * spatial.MilesPerKm,
		DurationHours: dr.Routes[0].Summary.Duration / 3600,
	}

	if o.routeCache != nil {
		if err := o.routeCache.Store(ctx, origin, destination, route); err != nil {
			log.Printf("route cache write failed: %v", err)
		}
	}

	return route, nil
}

// parseGeometry handles both geometry encodings ORS may return: a Google
// encoded polyline string, or a GeoJSON LineString with [lon, lat] pairs.
func parseGeometry(raw json.RawMessage) ([]domain.Coordinates, error) {
	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		return DecodePolyline(encoded)
	}

	var line struct {
		Coordinates [][]float64 `json:"coordinates"`
	}
	if err := json.Unmarshal(raw, &line); err != nil {
		return nil, fmt.Errorf("unsupported geometry encoding: %w", err)
	}

	points := make([]domain.Coordinates, 0, len(line.Coordinates))
	for i, pair := range line.Coordinates {
		if len(pair) < 2 {
			return nil, fmt.Errorf("geometry point #%d has %d components", i, len(pair))
		}
		points = append(points, domain.Coordinates{Lon: pair[0], Lat: pair[1]})
	}
	return points, nil
}

func coordKey(c domain.Coordinates) string {
	return fmt.Sprintf("%.5f,%.5f", c.Lat, c.Lon)
}
