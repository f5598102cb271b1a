package controllersfx

import (
	"go.uber.org/fx"

	"tripdesk/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewPlacesController,
	controllers.NewTripsController,
	controllers.NewLeadsController,
	controllers.NewSettingsController,
	controllers.NewRoutingController,
)
