package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"shudao/cmd/fx/authfx"
	"shudao/cmd/fx/checkinfx"
	"shudao/cmd/fx/controllersfx"
	"shudao/cmd/fx/datasetsfx"
	"shudao/cmd/fx/dbfx"
	"shudao/cmd/fx/favoritefx"
	"shudao/cmd/fx/filtersfx"
	"shudao/cmd/fx/routesfx"
	"gorm.io/gorm"
	"shudao/internal/api/controllers"
	"shudao/internal/infra"
	"shudao/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		fx.Provide(zap.NewProduction),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),

		dbfx.Module,
		authfx.Module,
		datasetsfx.Module,
		filtersfx.Module,
		checkinfx.Module,
		favoritefx.Module,
		routesfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB, logger *zap.Logger) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("port", port))
				if err := engine.Run(":" + port); err != nil {
					logger.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	datasetsController *controllers.DatasetsController,
	filtersController *controllers.FiltersController,
	checkinController *controllers.CheckinController,
	favoriteController *controllers.FavoriteController,
	routesController *controllers.RoutesController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		authController, datasetsController, filtersController,
		checkinController, favoriteController, routesController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	datasetsController *controllers.DatasetsController,
	filtersController *controllers.FiltersController,
	checkinController *controllers.CheckinController,
	favoriteController *controllers.FavoriteController,
	routesController *controllers.RoutesController) {

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Shudao cultural map API is running"})
	})

	authGroup := r.Group("/api/auth")
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)

	r.GET("/api/poems", datasetsController.GetPoems)
	r.GET("/api/poems/:id", datasetsController.GetPoemByID)
	r.GET("/api/heritage", datasetsController.GetHeritage)
	r.GET("/api/history", datasetsController.GetHistory)
	r.GET("/api/scenic", datasetsController.GetScenic)

	r.GET("/api/filters/options", filtersController.GetOptions)

	actionsGroup := r.Group("/api/actions")
	actionsGroup.POST("/checkins", checkinController.CreateCheckin)
	actionsGroup.GET("/checkins", checkinController.ListCheckins)
	actionsGroup.POST("/favorites", favoriteController.CreateFavorite)
	actionsGroup.DELETE("/favorites/:scenic_id", favoriteController.DeleteFavorite)
	actionsGroup.GET("/favorites", favoriteController.ListFavorites)
	actionsGroup.GET("/favorites/check/:scenic_id", favoriteController.CheckFavorite)

	routesGroup := r.Group("/api/routes")
	routesGroup.GET("", routesController.ListRoutes)
	routesGroup.GET("/summary", routesController.ListRouteSummaries)
	routesGroup.GET("/:id", routesController.GetRouteByID)
	routesGroup.POST("", routesController.CreateRoute)
	routesGroup.PUT("/:id", routesController.UpdateRoute)
	routesGroup.DELETE("/:id", routesController.DeleteRoute)
}
