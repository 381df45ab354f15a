package routing

import (
	"fmt"
	"strings"

	"fuel-route-service/internal/domain"
)

// DecodePolyline decodes a Google encoded polyline string into coordinates.
// Values are deltas of lat/lon scaled by 1e5, packed in 5-bit chunks.
func DecodePolyline(encoded string) ([]domain.Coordinates, error) {
	points := make([]domain.Coordinates, 0, len(encoded)/4)

	var lat, lon int32
	i := 0
	for i < len(encoded) {
		for field := 0; field < 2; field++ {
			var result uint32
			var shift uint
			for {
				if i >= len(encoded) {
					return nil, fmt.Errorf("decode polyline: truncated value at byte %d", i)
				}
				b := int32(encoded[i]) - 63
				if b < 0 {
					return nil, fmt.Errorf("decode polyline: invalid byte %q at %d", encoded[i], i)
				}
				i++
				result |= uint32(b&0x1F) << shift
				shift += 5
				if b < 0x20 {
					break
				}
			}

			var delta int32
			if result&1 != 0 {
				delta = ^int32(result >> 1)
			} else {
				delta = int32(result >> 1)
			}

			if field == 0 {
				lat += delta
			} else {
				lon += delta
			}
		}

		points = append(points, domain.Coordinates{
			Lat: float64(lat) / 1e5,
			Lon: float64(lon) / 1e5,
		})
	}

	return points, nil
}

// EncodeDisplayPolyline thins the polyline to every step-th point and renders
// it as comma-joined "lat,lon" pairs for lightweight map display.
func EncodeDisplayPolyline(points []domain.Coordinates, step int) string {
	if step < 1 {
		step = 1
	}

	parts := make([]string, 0, len(points)/step+1)
	for i := 0; i < len(points); i += step {
		parts = append(parts, fmt.Sprintf("%g,%g", points[i].Lat, points[i].Lon))
	}
	return strings.Join(parts, ",")
}
