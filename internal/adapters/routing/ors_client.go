package routing

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"fuel-route-service/internal/adapters/cache"
	"fuel-route-service/internal/ports"
)

// ORSClient talks to OpenRouteService for geocoding and driving directions.
//
// It coordinates:
//   - Address normalization
//   - Persistent geocode and route caching
//   - External API calls with retry/backoff
//
// The client is safe for concurrent use.
type ORSClient struct {
	session      *http.Client
	apiKey       string
	baseURL      string
	profile      string
	geocodeStore ports.GeocodeStore
	routeCache   *cache.SqliteRouteCache
}

func NewORSClient(
	apiKey string,
	geocodeStore ports.GeocodeStore,
	routeCache *cache.SqliteRouteCache,
) (*ORSClient, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	client := &ORSClient{
		session:      &http.Client{Timeout: 10 * time.Second},
		apiKey:       apiKey,
		baseURL:      "https://api.openrouteservice.org",
		profile:      "driving-car",
		geocodeStore: geocodeStore,
		routeCache:   routeCache,
	}

	return client, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (o *ORSClient) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
