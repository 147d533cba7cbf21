package datasetsfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"shudao/internal/repositories"
	"shudao/internal/services"
)

var Module = fx.Provide(
	providePoemRepo, provideHeritageRepo, provideHistoryRepo, provideScenicRepo,
	provideDatasetService)

func providePoemRepo(db *gorm.DB) repositories.PoemRepository {
	return repositories.NewPoemRepository(db)
}

func provideHeritageRepo(db *gorm.DB) repositories.HeritageRepository {
	return repositories.NewHeritageRepository(db)
}

func provideHistoryRepo(db *gorm.DB) repositories.HistoryRepository {
	return repositories.NewHistoryRepository(db)
}

func provideScenicRepo(db *gorm.DB) repositories.ScenicRepository {
	return repositories.NewScenicRepository(db)
}

func provideDatasetService(
	poemRepo repositories.PoemRepository,
	heritageRepo repositories.HeritageRepository,
	historyRepo repositories.HistoryRepository,
	scenicRepo repositories.ScenicRepository,
	logger *zap.Logger) services.DatasetServiceInterface {
	return services.NewDatasetService(poemRepo, heritageRepo, historyRepo, scenicRepo, logger)
}
