package services

import (
	"fmt"

	"fuel-route-service/internal/domain"
)

// PlanFuelStops runs the greedy range-window simulation over the projected,
// distance-sorted station list.
//
// The vehicle departs with a full tank. While the destination is out of range,
// the planner looks at every station reachable on the current tank, buys fuel
// at the cheapest one, and refills to full there. Always taking the cheapest
// reachable station is not globally cost-optimal over arbitrary price
// landscapes, but it is simple, explainable, and deterministic; swapping in a
// shortest-path formulation later would not change this contract.
//
// Tie-breaks inside a window: lowest price first, then the station farthest
// along the route (keeps the most flexibility for the next window), then
// lowest station id.
func PlanFuelStops(
	projected []domain.ProjectedStation,
	totalRouteDistanceMiles float64,
	vehicle domain.VehicleProfile,
) (*domain.PlanResult, error) {
	if err := vehicle.Validate(); err != nil {
		return nil, fmt.Errorf("plan fuel stops: %w", err)
	}

	currentMile := 0.0
	lastFullTankMile := 0.0

	stops := []domain.FuelStop{}
	totalGallons := 0.0
	totalCost := 0.0

	for currentMile+vehicle.RangeMiles < totalRouteDistanceMiles {
		best, ok := cheapestInWindow(projected, currentMile, currentMile+vehicle.RangeMiles)
		if !ok {
			return nil, &domain.UnreachableDestinationError{
				PositionMiles: currentMile,
				RangeMiles:    vehicle.RangeMiles,
			}
		}

		// Refill to full: buy back exactly the range spent since the tank
		// was last full.
		milesSinceFull := best.DistanceFromStartMiles - lastFullTankMile
		gallons := milesSinceFull / vehicle.MPG
		cost := gallons * best.PricePerGallon

		stops = append(stops, domain.FuelStop{
			Station:                best.Station,
			DistanceFromStartMiles: best.DistanceFromStartMiles,
			PricePerGallon:         best.PricePerGallon,
			Gallons:                gallons,
			Cost:                   cost,
		})
		totalGallons += gallons
		totalCost += cost

		currentMile = best.DistanceFromStartMiles
		lastFullTankMile = currentMile
	}

	return &domain.PlanResult{
		Stops:        stops,
		TotalGallons: totalGallons,
		TotalCost:    totalCost,
		Vehicle:      vehicle,
	}, nil
}

// cheapestInWindow selects the best station with mile marker in (from, to].
func cheapestInWindow(
	projected []domain.ProjectedStation,
	from, to float64,
) (domain.ProjectedStation, bool) {
	var best domain.ProjectedStation
	found := false

	for _, s := range projected {
		if s.DistanceFromStartMiles <= from || s.DistanceFromStartMiles > to {
			continue
		}

		if !found || betterStop(s, best) {
			best = s
			found = true
		}
	}

	return best, found
}

// betterStop reports whether a should be chosen over b within one window.
func betterStop(a, b domain.ProjectedStation) bool {
	if a.PricePerGallon != b.PricePerGallon {
		return a.PricePerGallon < b.PricePerGallon
	}
	if a.DistanceFromStartMiles != b.DistanceFromStartMiles {
		return a.DistanceFromStartMiles > b.DistanceFromStartMiles
	}
	return a.ID < b.ID
}
