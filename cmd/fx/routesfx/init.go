package routesfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"shudao/internal/repositories"
	"shudao/internal/services"
)

var Module = fx.Provide(
	provideRouteRepo, provideRouteService)

func provideRouteRepo(db *gorm.DB) repositories.RouteRepository {
	return repositories.NewRouteRepository(db)
}

func provideRouteService(
	routeRepo repositories.RouteRepository,
	userRepo repositories.UserRepository,
	logger *zap.Logger) services.RouteServiceInterface {
	return services.NewRouteService(routeRepo, userRepo, logger)
}
