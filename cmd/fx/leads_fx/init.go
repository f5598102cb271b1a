package leadsfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tripdesk/internal/repositories"
	"tripdesk/internal/services"
)

var Module = fx.Provide(
	provideLeadRepo, provideLeadService)

func provideLeadRepo(db *gorm.DB) repositories.LeadRepository {
	return repositories.NewLeadRepository(db)
}

func provideLeadService(leadRepo repositories.LeadRepository, logger *zap.Logger) services.LeadServiceInterface {
	return services.NewLeadService(leadRepo, logger)
}
