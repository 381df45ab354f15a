package domain

// Represents a single refueling stop in a computed plan.
// Gallons and Cost carry full float precision; rounding happens only at the
// presentation layer.
type FuelStop struct {
	Station                Station
	DistanceFromStartMiles float64
	PricePerGallon         float64
	Gallons                float64
	Cost                   float64
}

// Represents the outcome of one planning run: the ordered stop sequence plus
// aggregate fuel metrics. A PlanResult is never mutated after construction.
type PlanResult struct {
	Stops        []FuelStop
	TotalGallons float64
	TotalCost    float64
	Vehicle      VehicleProfile
}
