package cache

import (
	"context"
	"fmt"
	"testing"

	"fuel-route-service/internal/domain"
)

// countingGeocoder resolves every address to a unique coordinate and records
// how many times each one was asked for.
type countingGeocoder struct {
	calls map[string]int
	next  float64
}

func newCountingGeocoder() *countingGeocoder {
	return &countingGeocoder{calls: map[string]int{}}
}

func (g *countingGeocoder) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	g.calls[NormalizeKey(address)]++
	g.next++
	return domain.Coordinates{Lat: g.next, Lon: -g.next}, nil
}

func TestLRUGeocodeCacheHitSkipsDelegate(t *testing.T) {
	delegate := newCountingGeocoder()
	c, err := NewLRUGeocodeCache(10, delegate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := context.Background()

	first, err := c.Geocode(ctx, "1901 W Madison St, Phoenix, AZ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Same address, different spelling: one delegate call total.
	second, err := c.Geocode(ctx, "  1901 w madison st,   phoenix, az ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Errorf("cache returned different coordinates: %+v vs %+v", first, second)
	}
	if n := delegate.calls[NormalizeKey("1901 W Madison St, Phoenix, AZ")]; n != 1 {
		t.Errorf("delegate called %d times, want 1", n)
	}
}

func TestLRUGeocodeCacheEvictsLeastRecentlyUsed(t *testing.T) {
	delegate := newCountingGeocoder()
	const capacity = 3
	c, err := NewLRUGeocodeCache(capacity, delegate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := context.Background()

	// Fill to capacity, then one more: the oldest entry must go.
	for i := 0; i <= capacity; i++ {
		if _, err := c.Geocode(ctx, fmt.Sprintf("address %d", i)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if c.Len() != capacity {
		t.Fatalf("cache length = %d, want %d", c.Len(), capacity)
	}

	// "address 0" was evicted: looking it up again costs a second call.
	if _, err := c.Geocode(ctx, "address 0"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := delegate.calls["address 0"]; n != 2 {
		t.Errorf("evicted address resolved %d times, want 2", n)
	}

	// "address 2" survived the whole sequence: still a single resolution.
	if _, err := c.Geocode(ctx, "address 2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := delegate.calls["address 2"]; n != 1 {
		t.Errorf("retained address resolved %d times, want 1", n)
	}
}

func TestLRUGeocodeCacheHitPromotes(t *testing.T) {
	delegate := newCountingGeocoder()
	c, err := NewLRUGeocodeCache(2, delegate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := context.Background()

	c.Geocode(ctx, "a")
	c.Geocode(ctx, "b")

	// Touch "a" so "b" becomes the eviction victim.
	c.Geocode(ctx, "a")
	c.Geocode(ctx, "c")

	c.Geocode(ctx, "a")
	if n := delegate.calls["a"]; n != 1 {
		t.Errorf("promoted entry resolved %d times, want 1", n)
	}

	c.Geocode(ctx, "b")
	if n := delegate.calls["b"]; n != 2 {
		t.Errorf("evicted entry resolved %d times, want 2", n)
	}
}

func TestLRUGeocodeCacheRejectsBadConstruction(t *testing.T) {
	if _, err := NewLRUGeocodeCache(0, newCountingGeocoder()); err == nil {
		t.Error("expected error for zero capacity")
	}
	if _, err := NewLRUGeocodeCache(10, nil); err == nil {
		t.Error("expected error for nil delegate")
	}
}
