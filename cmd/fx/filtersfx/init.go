package filtersfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"shudao/internal/repositories"
	"shudao/internal/services"
)

var Module = fx.Provide(
	provideFilterRepo, provideFilterService)

func provideFilterRepo(db *gorm.DB) repositories.FilterRepository {
	return repositories.NewFilterRepository(db)
}

func provideFilterService(filterRepo repositories.FilterRepository, logger *zap.Logger) services.FilterServiceInterface {
	return services.NewFilterService(filterRepo, logger)
}
