package domain

// Immutable geographic coordinates (longitude, latitude), WGS84 decimal degrees.
type Coordinates struct {
	Lon float64
	Lat float64
}

// Return coordinates as [lon, lat] for external API compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

// Return coordinates as [lat, lon] for map display payloads.
func (c Coordinates) LatLonList() []float64 { return []float64{c.Lat, c.Lon} }
