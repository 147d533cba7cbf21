package checkinfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"shudao/internal/repositories"
	"shudao/internal/services"
)

var Module = fx.Provide(
	provideCheckinRepo, provideCheckinService)

func provideCheckinRepo(db *gorm.DB) repositories.CheckinRepository {
	return repositories.NewCheckinRepository(db)
}

func provideCheckinService(
	checkinRepo repositories.CheckinRepository,
	userRepo repositories.UserRepository,
	scenicRepo repositories.ScenicRepository,
	logger *zap.Logger) services.CheckinServiceInterface {
	return services.NewCheckinService(checkinRepo, userRepo, scenicRepo, logger)
}
