package controllersfx

import (
	"go.uber.org/fx"
	"shudao/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewDatasetsController),
	fx.Provide(controllers.NewFiltersController),
	fx.Provide(controllers.NewCheckinController),
	fx.Provide(controllers.NewFavoriteController),
	fx.Provide(controllers.NewRoutesController))
