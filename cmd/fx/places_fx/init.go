package placesfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tripdesk/internal/repositories"
	"tripdesk/internal/services"
)

var Module = fx.Provide(
	providePlaceRepo, provideClosureRepo, providePlaceService)

func providePlaceRepo(db *gorm.DB) repositories.PlaceRepository {
	return repositories.NewPlaceRepository(db)
}

func provideClosureRepo(db *gorm.DB) repositories.ClosureRepository {
	return repositories.NewClosureRepository(db)
}

func providePlaceService(
	placeRepo repositories.PlaceRepository,
	closureRepo repositories.ClosureRepository,
	logger *zap.Logger,
) services.PlaceServiceInterface {
	return services.NewPlaceService(placeRepo, closureRepo, logger)
}
