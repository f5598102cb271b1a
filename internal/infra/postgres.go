package infra

import (
	"os"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tripdesk/internal/models/db_models"
)

func InitPostgresql(logger *zap.Logger) *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Fatal("connecting to database", zap.Error(err))
	}

	if err := connectionPool.AutoMigrate(
		&db_models.Place{},
		&db_models.Closure{},
		&db_models.ClosureRange{},
		&db_models.Trip{},
		&db_models.TripDay{},
		&db_models.TripStop{},
		&db_models.Lead{},
		&db_models.Setting{},
	); err != nil {
		logger.Fatal("running migrations", zap.Error(err))
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB, logger *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("getting database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("closing database connection", zap.Error(err))
	}
}
