package settingsfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tripdesk/internal/repositories"
	"tripdesk/internal/services"
)

var Module = fx.Provide(
	provideSettingRepo, provideSettingsService)

func provideSettingRepo(db *gorm.DB) repositories.SettingRepository {
	return repositories.NewSettingRepository(db)
}

func provideSettingsService(settingRepo repositories.SettingRepository, logger *zap.Logger) services.SettingsServiceInterface {
	return services.NewSettingsService(settingRepo, logger)
}
