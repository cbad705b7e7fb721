package geo

import (
	"strings"
	"sync"
	"time"

	"github.com/swifthaul/rate-service/internal/domain/model"
	"github.com/swifthaul/rate-service/internal/metrics"
	"github.com/zoobzio/clockz"
)

// DefaultCacheTTL is how long a resolved distance stays valid.
const DefaultCacheTTL = 24 * time.Hour

// cacheEntry holds a resolved distance and its expiry.
type cacheEntry struct {
	result    model.DistanceResult
	expiresAt time.Time
}

// DistanceCache caches resolved distances keyed by the normalized
// (origin, destination) pair. Entries are evicted lazily at read time
// once expired; concurrent writers for the same key simply overwrite
// each other (last write wins), which is harmless because they resolve
// the same pair.
type DistanceCache struct {
	mu    sync.RWMutex
	items map[string]cacheEntry
	ttl   time.Duration
	clock clockz.Clock
}

// NewDistanceCache creates a cache with the given TTL. A nil clock
// falls back to the real clock; tests inject a fake clock to control
// expiry deterministically.
func NewDistanceCache(ttl time.Duration, clock clockz.Clock) *DistanceCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if clock == nil {
		clock = clockz.RealClock
	}
	return &DistanceCache{
		items: make(map[string]cacheEntry),
		ttl:   ttl,
		clock: clock,
	}
}

// cacheKey normalizes an (origin, destination) pair into a cache key.
func cacheKey(origin, destination string) string {
	return strings.ToLower(strings.TrimSpace(origin)) + "|" + strings.ToLower(strings.TrimSpace(destination))
}

// Get returns the cached distance for the pair, evicting it first if
// the entry has expired.
func (c *DistanceCache) Get(origin, destination string) (model.DistanceResult, bool) {
	key := cacheKey(origin, destination)

	c.mu.RLock()
	entry, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		metrics.RecordDistanceCacheOperation("get", "miss")
		return model.DistanceResult{}, false
	}

	if c.clock.Now().After(entry.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock; another goroutine may have
		// refreshed the entry meanwhile.
		if current, still := c.items[key]; still && c.clock.Now().After(current.expiresAt) {
			delete(c.items, key)
		}
		c.mu.Unlock()
		metrics.RecordDistanceCacheOperation("get", "expired")
		return model.DistanceResult{}, false
	}

	metrics.RecordDistanceCacheOperation("get", "hit")
	return entry.result, true
}

// Set stores a resolved distance for the pair with the configured TTL.
func (c *DistanceCache) Set(origin, destination string, result model.DistanceResult) {
	key := cacheKey(origin, destination)

	c.mu.Lock()
	c.items[key] = cacheEntry{result: result, expiresAt: c.clock.Now().Add(c.ttl)}
	c.mu.Unlock()

	metrics.RecordDistanceCacheOperation("set", "success")
}

// Len returns the number of entries currently held, expired or not.
func (c *DistanceCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
