package routing

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyIsDirectionSensitive(t *testing.T) {
	a := Point{Lon: 77.20900, Lat: 28.61390}
	b := Point{Lon: 78.00810, Lat: 27.17670}

	assert.NotEqual(t, Key(a, b), Key(b, a))

	// Coordinates differing below the rounding precision share a key.
	aJitter := Point{Lon: 77.209001, Lat: 28.613902}
	assert.Equal(t, Key(a, b), Key(aJitter, b))
}

func TestLRUCacheEvictsOldest(t *testing.T) {
	cache := NewLRUCache(2)

	cache.Put("a", Result{DistanceKm: 1})
	cache.Put("b", Result{DistanceKm: 2})

	// Touch "a" so "b" becomes the eviction candidate.
	_, ok := cache.Get("a")
	require.True(t, ok)

	cache.Put("c", Result{DistanceKm: 3})

	_, ok = cache.Get("b")
	assert.False(t, ok, "least recently used entry should be evicted")

	got, ok := cache.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1.0, got.DistanceKm)

	_, ok = cache.Get("c")
	assert.True(t, ok)
}

func TestLRUCacheOverwritesExisting(t *testing.T) {
	cache := NewLRUCache(2)

	cache.Put("a", Result{DistanceKm: 1, Provider: ProviderHaversine})
	cache.Put("a", Result{DistanceKm: 9, Provider: ProviderOSRM})

	got, ok := cache.Get("a")
	require.True(t, ok)
	assert.Equal(t, 9.0, got.DistanceKm)
	assert.Equal(t, ProviderOSRM, got.Provider)
}

func TestLRUCacheConcurrentAccess(t *testing.T) {
	cache := NewLRUCache(64)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				key := fmt.Sprintf("k%d", j%32)
				cache.Put(key, Result{TravelTimeMin: n})
				cache.Get(key)
			}
		}(i)
	}
	wg.Wait()

	_, ok := cache.Get("k0")
	assert.True(t, ok)
}
