package cache

import (
	"container/list"
	"context"
	"errors"
	"strings"
	"sync"

	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/ports"
)

// In-memory address -> coordinate memoization with a bounded capacity and
// least-recently-used eviction, sitting in front of a real geocoder.
//
// Keys are normalized (case-folded, whitespace-collapsed) so trivially
// different spellings of the same address share one entry. A hit promotes the
// entry to most-recently-used; a miss triggers exactly one delegate call.
// Known limitation: concurrent misses for the same key are not deduplicated,
// each caller issues its own delegate call and the last write wins.
type LRUGeocodeCache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List
	entries  map[string]*list.Element
	next     ports.Geocoder
}

type lruEntry struct {
	key   string
	coord domain.Coordinates
}

func NewLRUGeocodeCache(capacity int, next ports.Geocoder) (*LRUGeocodeCache, error) {
	if capacity <= 0 {
		return nil, errors.New("geocode cache: capacity must be positive")
	}
	if next == nil {
		return nil, errors.New("geocode cache: delegate geocoder is nil")
	}

	return &LRUGeocodeCache{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[string]*list.Element, capacity),
		next:     next,
	}, nil
}

// NormalizeKey collapses whitespace and case-folds an address for use as a
// cache key.
func NormalizeKey(address string) string {
	return strings.ToLower(strings.Join(strings.Fields(address), " "))
}

func (c *LRUGeocodeCache) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	key := NormalizeKey(address)
	if key == "" {
		return domain.Coordinates{}, errors.New("geocode cache: address must be non-empty")
	}

	c.mu.Lock()
	if el, ok := c.entries[key]; ok {
		c.order.MoveToFront(el)
		coord := el.Value.(*lruEntry).coord
		c.mu.Unlock()
		return coord, nil
	}
	c.mu.Unlock()

	// The lock is not held across the external call; that is what makes
	// duplicate in-flight lookups possible.
	coord, err := c.next.Geocode(ctx, address)
	if err != nil {
		return domain.Coordinates{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		// Another caller resolved the same key while we were out.
		c.order.MoveToFront(el)
		el.Value.(*lruEntry).coord = coord
		return coord, nil
	}

	c.entries[key] = c.order.PushFront(&lruEntry{key: key, coord: coord})
	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*lruEntry).key)
	}

	return coord, nil
}

// Len returns the number of cached entries.
func (c *LRUGeocodeCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
