package domain

import (
	"errors"
	"fmt"
)

// Planning failures are recoverable by the caller: the boundary layer maps
// them to user-facing responses, the core never panics over them.
var (
	// Route polyline has fewer than two points.
	ErrEmptyRoute = errors.New("route polyline must contain at least 2 points")

	// Corridor filtering produced zero candidates. A catalog/coverage
	// problem, distinct from running out of range mid-route.
	ErrNoStationsInCorridor = errors.New("no fuel stations found along the route")

	// Vehicle range or mpg is non-positive.
	ErrInvalidVehicleProfile = errors.New("vehicle range and mpg must be positive")
)

// Reported when the greedy simulation finds no reachable station before the
// tank runs dry. PositionMiles is the point the vehicle last had a full tank,
// so the unreachable gap is (PositionMiles, PositionMiles+RangeMiles].
type UnreachableDestinationError struct {
	PositionMiles float64
	RangeMiles    float64
}

func (e *UnreachableDestinationError) Error() string {
	return fmt.Sprintf(
		"no reachable fuel station between mile %.1f and mile %.1f",
		e.PositionMiles, e.PositionMiles+e.RangeMiles,
	)
}
