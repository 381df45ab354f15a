package dto

type StationResponse struct {
	StationID      string    `json:"station_id"`
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	City           string    `json:"city"`
	State          string    `json:"state"`
	PricePerGallon float64   `json:"price_per_gallon"`
	Coordinates    []float64 `json:"coordinates"`
}

type ListStationsResponse struct {
	Stations []StationResponse `json:"stations"`
}
