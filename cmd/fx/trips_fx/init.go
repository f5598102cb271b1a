package tripsfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tripdesk/internal/repositories"
	"tripdesk/internal/services"
)

var Module = fx.Provide(
	provideTripRepo, provideTripService)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(
	tripRepo repositories.TripRepository,
	placeRepo repositories.PlaceRepository,
	logger *zap.Logger,
) services.TripServiceInterface {
	return services.NewTripService(tripRepo, placeRepo, logger)
}
