package domain

// Represents a single fuel station from the price catalog.
// Coordinates are assigned once at catalog load time, so two runs against the
// same catalog file see identical positions for the same station id.
type Station struct {
	ID             string
	Name           string
	Address        string
	City           string
	State          string
	PricePerGallon float64
	Coord          Coordinates
}

// A Station that survived corridor filtering, together with its minimum
// geodesic distance to the route.
type CorridorCandidate struct {
	Station
	DistanceFromRouteKm float64
}

// A CorridorCandidate positioned along the route. DistanceFromStartMiles is the
// estimated mile marker, clamped to [0, route total distance].
type ProjectedStation struct {
	CorridorCandidate
	DistanceFromStartMiles float64
}
