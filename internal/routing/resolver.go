package routing

import (
	"context"
	"errors"

	"tripdesk/pkg/utils"
)

var errDegenerateCoords = errors.New("degenerate coordinates")

const (
	// DefaultBaseURL is the public OSRM-compatible endpoint used when no
	// routing_base_url setting is configured.
	DefaultBaseURL = "https://router.project-osrm.org"

	// Assumed average road speed for geometric estimates.
	fallbackSpeedKmh = 40.0

	// Static defaults when not even a geometric estimate is possible.
	staticDistanceKm = 5.0
	staticTravelMin  = 15
)

type strategyFn func(ctx context.Context, origin, destination Point, cfg Config) (Result, error)

// Resolver resolves a route leg through an ordered chain of strategies:
// OSRM route query, then a haversine estimate, then a static default. It
// never fails; the surviving result is tagged with the provider used and
// memoized in the cache.
type Resolver struct {
	osrm  *osrmClient
	cache Cache
}

func NewResolver(cache Cache) *Resolver {
	if cache == nil {
		cache = NoopCache{}
	}
	return &Resolver{
		osrm:  newOSRMClient(),
		cache: cache,
	}
}

func (r *Resolver) Resolve(ctx context.Context, origin, destination Point, cfg Config) Result {
	key := Key(origin, destination)
	if cached, ok := r.cache.Get(key); ok {
		return cached
	}

	var result Result
	for _, strategy := range []strategyFn{r.osrmRoute, haversineRoute, staticRoute} {
		res, err := strategy(ctx, origin, destination, cfg)
		if err != nil {
			continue
		}
		result = res
		break
	}

	r.cache.Put(key, result)
	return result
}

func (r *Resolver) osrmRoute(ctx context.Context, origin, destination Point, cfg Config) (Result, error) {
	return r.osrm.route(ctx, origin, destination, cfg)
}

func haversineRoute(_ context.Context, origin, destination Point, _ Config) (Result, error) {
	if !utils.IsValidLatLon(origin.Lat, origin.Lon) || !utils.IsValidLatLon(destination.Lat, destination.Lon) {
		return Result{}, errDegenerateCoords
	}

	distance := utils.HaversineKm(origin.Lat, origin.Lon, destination.Lat, destination.Lon)
	return Result{
		DistanceKm:    distance,
		TravelTimeMin: int(distance/fallbackSpeedKmh*60 + 0.5),
		Provider:      ProviderHaversine,
	}, nil
}

func staticRoute(_ context.Context, _, _ Point, _ Config) (Result, error) {
	return Result{
		DistanceKm:    staticDistanceKm,
		TravelTimeMin: staticTravelMin,
		Provider:      ProviderStatic,
	}, nil
}
