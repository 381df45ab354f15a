package domain

// Represents a driving route as returned by the routing provider.
// Points are in travel order; DistanceMiles and DurationHours cover the whole
// route. The polyline is read-only input to the planning pipeline.
type RoutePolyline struct {
	Points        []Coordinates
	DistanceMiles float64
	DurationHours float64
}

// Default vehicle parameters, matching a loaded long-haul truck.
const (
	DefaultVehicleRangeMiles = 500
	DefaultVehicleMPG        = 10
)

// Fixed vehicle characteristics for a single planning run.
type VehicleProfile struct {
	RangeMiles float64
	MPG        float64
}

func DefaultVehicleProfile() VehicleProfile {
	return VehicleProfile{RangeMiles: DefaultVehicleRangeMiles, MPG: DefaultVehicleMPG}
}

// Validate reports whether the profile can drive a simulation at all.
func (v VehicleProfile) Validate() error {
	if v.RangeMiles <= 0 || v.MPG <= 0 {
		return ErrInvalidVehicleProfile
	}
	return nil
}
