package spatial

import (
	"fuel-route-service/internal/domain"

	"github.com/golang/geo/s2"
)

const (
	EarthRadiusKm = 6371.0

	MilesPerKm = 1 / 1.60934
	KmPerMile  = 1.60934
)

func toPoint(c domain.Coordinates) s2.Point {
	return s2.PointFromLatLng(s2.LatLngFromDegrees(c.Lat, c.Lon))
}

// DistanceKm returns the great-circle distance between two coordinates in
// kilometers.
func DistanceKm(a, b domain.Coordinates) float64 {
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lon)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lon)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}

// SegmentDistanceKm returns the minimum geodesic distance in kilometers from p
// to the segment (a, b). Degenerate zero-length segments collapse to a point
// distance.
func SegmentDistanceKm(p, a, b domain.Coordinates) float64 {
	if a == b {
		return DistanceKm(p, a)
	}
	return s2.DistanceFromSegment(toPoint(p), toPoint(a), toPoint(b)).Radians() * EarthRadiusKm
}

// ClosestPointOnSegment returns the point on segment (a, b) closest to p,
// together with its geodesic distance from a in kilometers.
func ClosestPointOnSegment(p, a, b domain.Coordinates) (domain.Coordinates, float64) {
	if a == b {
		return a, 0
	}

	pa := toPoint(a)
	proj := s2.Project(toPoint(p), pa, toPoint(b))
	ll := s2.LatLngFromPoint(proj)

	closest := domain.Coordinates{Lat: ll.Lat.Degrees(), Lon: ll.Lng.Degrees()}
	return closest, pa.Distance(proj).Radians() * EarthRadiusKm
}
