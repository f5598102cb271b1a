package routingfx

import (
	"go.uber.org/fx"

	"tripdesk/internal/routing"
	"tripdesk/internal/schedule"
)

const routeCacheCapacity = 4096

var Module = fx.Provide(provideResolver)

// One resolver per process: the route cache behind it is shared across
// concurrent scheduling runs.
func provideResolver() schedule.RouteResolver {
	return routing.NewResolver(routing.NewLRUCache(routeCacheCapacity))
}
