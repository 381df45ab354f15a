package repositories

import "fuel-route-service/internal/domain"

// Geographic centroid of the contiguous US, used when a station carries an
// unknown state code.
var usCentroid = domain.Coordinates{Lat: 39.8283, Lon: -98.5795}

// Approximate state centroids used as the base for deterministic station
// coordinate assignment.
var stateCoords = map[string]domain.Coordinates{
	"AL": {Lat: 32.3182, Lon: -86.9023}, "AK": {Lat: 63.5888, Lon: -154.4931},
	"AZ": {Lat: 34.0489, Lon: -111.0937}, "AR": {Lat: 35.2010, Lon: -91.8318},
	"CA": {Lat: 36.7783, Lon: -119.4179}, "CO": {Lat: 39.5501, Lon: -105.7821},
	"CT": {Lat: 41.6032, Lon: -73.0877}, "DE": {Lat: 38.9108, Lon: -75.5277},
	"FL": {Lat: 27.9944, Lon: -81.7603}, "GA": {Lat: 32.1656, Lon: -82.9001},
	"HI": {Lat: 19.8968, Lon: -155.5828}, "ID": {Lat: 44.0682, Lon: -114.7420},
	"IL": {Lat: 40.6331, Lon: -89.3985}, "IN": {Lat: 40.2672, Lon: -86.1349},
	"IA": {Lat: 41.8780, Lon: -93.0977}, "KS": {Lat: 39.0119, Lon: -98.4842},
	"KY": {Lat: 37.8393, Lon: -84.2700}, "LA": {Lat: 30.9843, Lon: -91.9623},
	"ME": {Lat: 45.2538, Lon: -69.4455}, "MD": {Lat: 39.0458, Lon: -76.6413},
	"MA": {Lat: 42.4072, Lon: -71.3824}, "MI": {Lat: 44.3148, Lon: -85.6024},
	"MN": {Lat: 46.7296, Lon: -94.6859}, "MS": {Lat: 32.3547, Lon: -89.3985},
	"MO": {Lat: 37.9643, Lon: -91.8318}, "MT": {Lat: 46.8797, Lon: -110.3626},
	"NE": {Lat: 41.4925, Lon: -99.9018}, "NV": {Lat: 38.8026, Lon: -116.4194},
	"NH": {Lat: 43.1939, Lon: -71.5724}, "NJ": {Lat: 40.0583, Lon: -74.4057},
	"NM": {Lat: 34.5199, Lon: -105.8701}, "NY": {Lat: 42.1657, Lon: -74.9481},
	"NC": {Lat: 35.7596, Lon: -79.0193}, "ND": {Lat: 47.5515, Lon: -101.0020},
	"OH": {Lat: 40.4173, Lon: -82.9071}, "OK": {Lat: 35.4676, Lon: -97.5164},
	"OR": {Lat: 43.8041, Lon: -120.5542}, "PA": {Lat: 41.2033, Lon: -77.1945},
	"RI": {Lat: 41.5801, Lon: -71.4774}, "SC": {Lat: 33.8361, Lon: -81.1637},
	"SD": {Lat: 43.9695, Lon: -99.9018}, "TN": {Lat: 35.5175, Lon: -86.5804},
	"TX": {Lat: 31.9686, Lon: -99.9018}, "UT": {Lat: 39.3210, Lon: -111.0937},
	"VT": {Lat: 44.5588, Lon: -72.5778}, "VA": {Lat: 37.4316, Lon: -78.6569},
	"WA": {Lat: 47.7511, Lon: -120.7401}, "WV": {Lat: 38.5976, Lon: -80.4549},
	"WI": {Lat: 43.7844, Lon: -88.7879}, "WY": {Lat: 43.0760, Lon: -107.2903},
	"DC": {Lat: 38.9072, Lon: -77.0369},
}

// stationHash is a 31-multiplier rolling hash over the key, truncated to 32
// bits. It only has to be stable across runs, not cryptographic.
func stationHash(s string) uint32 {
	var h uint32
	for _, ch := range s {
		h = h*31 + uint32(ch)
	}
	return h
}

// DeterministicCoordinate assigns a station a stable pseudo-position: the
// state centroid plus hash-derived offsets of up to +/-2 degrees latitude and
// +/-3 degrees longitude. The same (city, state, id) triple always maps to
// the same coordinate, which is what makes planning reproducible.
func DeterministicCoordinate(city, state, id string) domain.Coordinates {
	base, ok := stateCoords[state]
	if !ok {
		base = usCentroid
	}

	h := stationHash(city + "-" + state + "-" + id)
	latOffset := float64(int32(h%400)-200) / 100
	lonOffset := float64(int32((h>>8)%600)-300) / 100

	return domain.Coordinates{
		Lat: base.Lat + latOffset,
		Lon: base.Lon + lonOffset,
	}
}
