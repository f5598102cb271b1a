package schedulefx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripdesk/internal/repositories"
	"tripdesk/internal/schedule"
	"tripdesk/internal/services"
)

var Module = fx.Provide(provideScheduleService)

func provideScheduleService(
	tripRepo repositories.TripRepository,
	placeRepo repositories.PlaceRepository,
	closureRepo repositories.ClosureRepository,
	settings services.SettingsServiceInterface,
	resolver schedule.RouteResolver,
	logger *zap.Logger,
) services.ScheduleServiceInterface {
	return services.NewScheduleService(tripRepo, placeRepo, closureRepo, settings, resolver, logger)
}
