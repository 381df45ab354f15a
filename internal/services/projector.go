package services

import (
	"slices"

	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/spatial"
)

// ProjectStations estimates an along-route mile marker for every corridor
// candidate and returns the list sorted by that marker.
//
// Each candidate is snapped to the closest point on its nearest polyline
// segment (interpolated, not vertex-only), and the cumulative polyline
// distance to that point is rescaled from polyline-space kilometers to the
// provider-reported route distance in miles. The result is an estimate, which
// is acceptable: corridor filtering bounds how far off-route a station can be.
func ProjectStations(
	candidates []domain.CorridorCandidate,
	route *domain.RoutePolyline,
) []domain.ProjectedStation {
	if route == nil || len(route.Points) < 2 || len(candidates) == 0 {
		return []domain.ProjectedStation{}
	}

	// Cumulative geodesic distance to each vertex, skipping zero-length segments.
	cumKm := make([]float64, len(route.Points))
	for i := 1; i < len(route.Points); i++ {
		seg := 0.0
		if route.Points[i-1] != route.Points[i] {
			seg = spatial.DistanceKm(route.Points[i-1], route.Points[i])
		}
		cumKm[i] = cumKm[i-1] + seg
	}
	totalKm := cumKm[len(cumKm)-1]

	projected := make([]domain.ProjectedStation, 0, len(candidates))
	for _, cand := range candidates {
		alongKm := projectAlongRouteKm(cand.Coord, route.Points, cumKm)

		mile := 0.0
		if totalKm > 0 {
			mile = alongKm / totalKm * route.DistanceMiles
		}
		if mile < 0 {
			mile = 0
		}
		if mile > route.DistanceMiles {
			mile = route.DistanceMiles
		}

		projected = append(projected, domain.ProjectedStation{
			CorridorCandidate:      cand,
			DistanceFromStartMiles: mile,
		})
	}

	// Mile-marker ties resolve by price, then id, so identical inputs always
	// produce the same ordering.
	slices.SortFunc(projected, func(a, b domain.ProjectedStation) int {
		if a.DistanceFromStartMiles != b.DistanceFromStartMiles {
			if a.DistanceFromStartMiles < b.DistanceFromStartMiles {
				return -1
			}
			return 1
		}
		if a.PricePerGallon != b.PricePerGallon {
			if a.PricePerGallon < b.PricePerGallon {
				return -1
			}
			return 1
		}
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})

	return projected
}

// projectAlongRouteKm finds the segment closest to the coordinate and returns
// the cumulative polyline distance to the interpolated closest point.
func projectAlongRouteKm(c domain.Coordinates, points []domain.Coordinates, cumKm []float64) float64 {
	bestDist := -1.0
	bestAlong := 0.0

	for i := 0; i < len(points)-1; i++ {
		a, b := points[i], points[i+1]
		if a == b {
			continue
		}

		dist := spatial.SegmentDistanceKm(c, a, b)
		if bestDist >= 0 && dist >= bestDist {
			continue
		}

		_, offsetKm := spatial.ClosestPointOnSegment(c, a, b)
		bestDist = dist
		bestAlong = cumKm[i] + offsetKm
	}

	return bestAlong
}
