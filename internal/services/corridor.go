package services

import (
	"math"

	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/spatial"
)

// Default corridor geometry: stations further than this from the route are
// never worth the detour.
const (
	DefaultMaxCorridorKm = 80.0
	DefaultBBoxPaddingKm = 80.0
	kmPerDegreeLatitude  = 111.0
	minLongitudeCosine   = 0.2 // keeps the prefilter sane near the poles
)

type boundingBox struct {
	minLat, maxLat float64
	minLon, maxLon float64
}

func (b boundingBox) contains(c domain.Coordinates) bool {
	return c.Lat >= b.minLat && c.Lat <= b.maxLat &&
		c.Lon >= b.minLon && c.Lon <= b.maxLon
}

// routeBoundingBox computes an axis-aligned box over the polyline, padded by
// padKm converted to degrees. Longitude padding is scaled by the latitude of
// the box midpoint; the box is only a prefilter, so the approximation is fine.
func routeBoundingBox(points []domain.Coordinates, padKm float64) boundingBox {
	box := boundingBox{
		minLat: math.Inf(1), maxLat: math.Inf(-1),
		minLon: math.Inf(1), maxLon: math.Inf(-1),
	}
	for _, p := range points {
		box.minLat = math.Min(box.minLat, p.Lat)
		box.maxLat = math.Max(box.maxLat, p.Lat)
		box.minLon = math.Min(box.minLon, p.Lon)
		box.maxLon = math.Max(box.maxLon, p.Lon)
	}

	latPad := padKm / kmPerDegreeLatitude

	midLat := (box.minLat + box.maxLat) / 2
	cos := math.Cos(midLat * math.Pi / 180)
	if cos < minLongitudeCosine {
		cos = minLongitudeCosine
	}
	lonPad := padKm / (kmPerDegreeLatitude * cos)

	box.minLat -= latPad
	box.maxLat += latPad
	box.minLon -= lonPad
	box.maxLon += lonPad
	return box
}

// FilterCorridor reduces the catalog to stations plausibly near the route.
//
// A cheap bounding-box pass discards stations that are obviously far away
// before any geodesic work happens; the surviving stations are then measured
// exactly against every polyline segment and kept iff within maxCorridorKm.
// Catalog order is preserved for kept stations, so equal-distance stations
// come out in a deterministic order.
func FilterCorridor(
	stations []domain.Station,
	route *domain.RoutePolyline,
	bboxPaddingKm float64,
	maxCorridorKm float64,
) []domain.CorridorCandidate {
	if route == nil || len(route.Points) < 2 {
		return []domain.CorridorCandidate{}
	}

	if bboxPaddingKm <= 0 {
		bboxPaddingKm = DefaultBBoxPaddingKm
	}
	if maxCorridorKm <= 0 {
		maxCorridorKm = DefaultMaxCorridorKm
	}

	box := routeBoundingBox(route.Points, bboxPaddingKm)

	candidates := make([]domain.CorridorCandidate, 0, 64)
	for _, st := range stations {
		if !box.contains(st.Coord) {
			continue
		}

		dist := minDistanceToRouteKm(st.Coord, route.Points)
		if dist > maxCorridorKm {
			continue
		}

		candidates = append(candidates, domain.CorridorCandidate{
			Station:             st,
			DistanceFromRouteKm: dist,
		})
	}

	return candidates
}

// minDistanceToRouteKm returns the minimum geodesic distance from the
// coordinate to any polyline segment. Zero-length segments are skipped.
func minDistanceToRouteKm(c domain.Coordinates, points []domain.Coordinates) float64 {
	min := math.Inf(1)
	for i := 0; i < len(points)-1; i++ {
		a, b := points[i], points[i+1]
		if a == b {
			continue
		}
		if d := spatial.SegmentDistanceKm(c, a, b); d < min {
			min = d
		}
	}
	return min
}
