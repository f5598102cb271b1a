package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm(t *testing.T) {
	// New Delhi to Agra, roughly 180 km great-circle.
	got := HaversineKm(28.6139, 77.2090, 27.1767, 78.0081)
	assert.InDelta(t, 178, got, 5)

	// Zero distance for identical points.
	assert.Zero(t, HaversineKm(12.97, 77.59, 12.97, 77.59))

	// Symmetric in both directions.
	a := HaversineKm(19.0760, 72.8777, 18.5204, 73.8567)
	b := HaversineKm(18.5204, 73.8567, 19.0760, 72.8777)
	assert.InDelta(t, a, b, 1e-9)
}

func TestIsValidLatLon(t *testing.T) {
	assert.True(t, IsValidLatLon(28.6139, 77.2090))
	assert.True(t, IsValidLatLon(-90, 180))

	assert.False(t, IsValidLatLon(0, 0))
	assert.False(t, IsValidLatLon(91, 10))
	assert.False(t, IsValidLatLon(10, -181))
	assert.False(t, IsValidLatLon(math.NaN(), 10))
	assert.False(t, IsValidLatLon(10, math.Inf(1)))
}
