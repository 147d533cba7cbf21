package favoritefx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"shudao/internal/repositories"
	"shudao/internal/services"
)

var Module = fx.Provide(
	provideFavoriteRepo, provideFavoriteService)

func provideFavoriteRepo(db *gorm.DB) repositories.FavoriteRepository {
	return repositories.NewFavoriteRepository(db)
}

func provideFavoriteService(
	favoriteRepo repositories.FavoriteRepository,
	userRepo repositories.UserRepository,
	scenicRepo repositories.ScenicRepository,
	logger *zap.Logger) services.FavoriteServiceInterface {
	return services.NewFavoriteService(favoriteRepo, userRepo, scenicRepo, logger)
}
