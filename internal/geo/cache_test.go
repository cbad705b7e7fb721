package geo

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/swifthaul/rate-service/internal/domain/model"
	"github.com/zoobzio/clockz"
)

func TestDistanceCacheGetSet(t *testing.T) {
	cache := NewDistanceCache(24*time.Hour, clockz.NewFakeClock())

	_, ok := cache.Get("Lagos", "Kano")
	assert.False(t, ok)

	result := model.DistanceResult{DistanceKm: 990, DurationHours: 12.5, Source: "route_primary"}
	cache.Set("Lagos", "Kano", result)

	got, ok := cache.Get("Lagos", "Kano")
	assert.True(t, ok)
	assert.Equal(t, result, got)
}

func TestDistanceCacheKeyNormalization(t *testing.T) {
	cache := NewDistanceCache(24*time.Hour, clockz.NewFakeClock())
	cache.Set("Lagos", "Kano", model.DistanceResult{DistanceKm: 990})

	got, ok := cache.Get("  LAGOS ", "kano")
	assert.True(t, ok)
	assert.Equal(t, 990.0, got.DistanceKm)

	// Direction matters.
	_, ok = cache.Get("Kano", "Lagos")
	assert.False(t, ok)
}

func TestDistanceCacheExpiry(t *testing.T) {
	clock := clockz.NewFakeClock()
	cache := NewDistanceCache(24*time.Hour, clock)
	cache.Set("Lagos", "Kano", model.DistanceResult{DistanceKm: 990})

	clock.Advance(23 * time.Hour)
	_, ok := cache.Get("Lagos", "Kano")
	assert.True(t, ok)

	clock.Advance(2 * time.Hour)
	_, ok = cache.Get("Lagos", "Kano")
	assert.False(t, ok)

	// Expired entry was lazily evicted on read.
	assert.Zero(t, cache.Len())
}

func TestDistanceCacheLastWriteWins(t *testing.T) {
	cache := NewDistanceCache(24*time.Hour, clockz.NewFakeClock())

	cache.Set("Lagos", "Kano", model.DistanceResult{DistanceKm: 985, Source: "route_primary"})
	cache.Set("Lagos", "Kano", model.DistanceResult{DistanceKm: 990, Source: "route_secondary"})

	got, ok := cache.Get("Lagos", "Kano")
	assert.True(t, ok)
	assert.Equal(t, 990.0, got.DistanceKm)
}

func TestDistanceCacheDefaultTTL(t *testing.T) {
	cache := NewDistanceCache(0, nil)
	assert.Equal(t, DefaultCacheTTL, cache.ttl)
}

func TestDistanceCachePreservesNaNDuration(t *testing.T) {
	cache := NewDistanceCache(24*time.Hour, clockz.NewFakeClock())
	cache.Set("Lagos", "Kano", model.DistanceResult{DistanceKm: 990, DurationHours: math.NaN(), Source: SourceHaversine})

	got, ok := cache.Get("Lagos", "Kano")
	assert.True(t, ok)
	assert.False(t, got.HasDuration())
}
