package dbfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tripdesk/internal/infra"
)

var Module = fx.Provide(
	provideLogger, provideDB)

func provideLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return logger
}

func provideDB(logger *zap.Logger) *gorm.DB {
	return infra.InitPostgresql(logger)
}
