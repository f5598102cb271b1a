package routing

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	delhi = Point{Lon: 77.2090, Lat: 28.6139}
	agra  = Point{Lon: 78.0081, Lat: 27.1767}
)

func TestResolveUsesOSRMOnSuccess(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Contains(t, r.URL.Path, "/route/v1/driving/")
		assert.Equal(t, "false", r.URL.Query().Get("overview"))
		fmt.Fprint(w, `{"code":"Ok","routes":[{"distance":10000,"duration":1200}]}`)
	}))
	defer server.Close()

	resolver := NewResolver(NoopCache{})
	got := resolver.Resolve(context.Background(), delhi, agra, Config{BaseURL: server.URL})

	assert.Equal(t, ProviderOSRM, got.Provider)
	assert.Equal(t, 10.0, got.DistanceKm)
	assert.Equal(t, 20, got.TravelTimeMin)
	assert.Equal(t, 1, calls)
}

func TestResolveFallsBackToHaversineOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	resolver := NewResolver(NoopCache{})
	got := resolver.Resolve(context.Background(), delhi, agra, Config{BaseURL: server.URL})

	assert.Equal(t, ProviderHaversine, got.Provider)
	assert.InDelta(t, 178, got.DistanceKm, 5)
	// Estimated at the assumed average speed, never zero for distinct points.
	assert.Greater(t, got.TravelTimeMin, 0)
}

func TestResolveFallsBackOnMalformedPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>rate limited</html>`},
		{"no routes", `{"code":"Ok","routes":[]}`},
		{"error code", `{"code":"NoRoute","routes":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			resolver := NewResolver(NoopCache{})
			got := resolver.Resolve(context.Background(), delhi, agra, Config{BaseURL: server.URL})
			assert.Equal(t, ProviderHaversine, got.Provider)
		})
	}
}

func TestResolveStaticForDegenerateCoordinates(t *testing.T) {
	resolver := NewResolver(NoopCache{})

	// Unreachable endpoint plus zero-value coordinates: neither OSRM nor
	// the geometric estimate can answer.
	got := resolver.Resolve(context.Background(), Point{}, agra, Config{BaseURL: "http://127.0.0.1:1"})

	assert.Equal(t, ProviderStatic, got.Provider)
	assert.Equal(t, staticDistanceKm, got.DistanceKm)
	assert.Equal(t, staticTravelMin, got.TravelTimeMin)
}

func TestResolveConsultsAndPopulatesCache(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `{"code":"Ok","routes":[{"distance":5000,"duration":600}]}`)
	}))
	defer server.Close()

	cache := NewLRUCache(8)
	resolver := NewResolver(cache)
	cfg := Config{BaseURL: server.URL}

	first := resolver.Resolve(context.Background(), delhi, agra, cfg)
	second := resolver.Resolve(context.Background(), delhi, agra, cfg)

	require.Equal(t, first, second)
	assert.Equal(t, 1, calls, "second call must be served from the cache")

	// The reverse direction is a distinct key and hits the service again.
	resolver.Resolve(context.Background(), agra, delhi, cfg)
	assert.Equal(t, 2, calls)
}

func TestResolveNeverFailsWhenServiceUnreachable(t *testing.T) {
	resolver := NewResolver(NoopCache{})

	got := resolver.Resolve(context.Background(), delhi, agra, Config{BaseURL: "http://127.0.0.1:1"})

	assert.Equal(t, ProviderHaversine, got.Provider)
	assert.Greater(t, got.DistanceKm, 0.0)
}
