package dto

type RouteRequest struct {
	Start      string  `json:"start"`
	End        string  `json:"end"`
	RangeMiles float64 `json:"range_miles"`
	MPG        float64 `json:"mpg"`
}

type RouteSummary struct {
	Start           string      `json:"start"`
	End             string      `json:"end"`
	DistanceMiles   float64     `json:"distance_miles"`
	DistanceKm      float64     `json:"distance_km"`
	DurationHours   float64     `json:"duration_hours"`
	Coordinates     [][]float64 `json:"coordinates"`
	EncodedPolyline string      `json:"encoded_polyline"`
}

type FuelStopResponse struct {
	StationName            string    `json:"station_name"`
	Address                string    `json:"address"`
	City                   string    `json:"city"`
	State                  string    `json:"state"`
	PricePerGallon         float64   `json:"price_per_gallon"`
	Gallons                float64   `json:"gallons"`
	Cost                   float64   `json:"cost"`
	Coordinates            []float64 `json:"coordinates"`
	DistanceFromStartMiles float64   `json:"distance_from_start_miles"`
}

type VehicleSpecs struct {
	MPG        float64 `json:"mpg"`
	RangeMiles float64 `json:"range_miles"`
}

type RouteResponse struct {
	Route            RouteSummary       `json:"route"`
	FuelStops        []FuelStopResponse `json:"fuel_stops"`
	TotalFuelGallons float64            `json:"total_fuel_gallons"`
	TotalFuelCost    float64            `json:"total_fuel_cost"`
	VehicleSpecs     VehicleSpecs       `json:"vehicle_specs"`
}
