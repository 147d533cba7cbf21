package services

import (
	"context"

	"go.uber.org/zap"
	"shudao/internal/models/db_models"
	"shudao/internal/repositories"
	"shudao/pkg/utils"
)

type DatasetServiceInterface interface {
	ListPoems(ctx context.Context) ([]db_models.Poem, error)
	GetPoemByID(ctx context.Context, id int) (*db_models.Poem, error)
	ListHeritage(ctx context.Context) ([]db_models.Heritage, error)
	ListHistory(ctx context.Context) ([]db_models.History, error)
	ListScenic(ctx context.Context) ([]db_models.Scenic, error)
}

type DatasetService struct {
	poemRepo     repositories.PoemRepository
	heritageRepo repositories.HeritageRepository
	historyRepo  repositories.HistoryRepository
	scenicRepo   repositories.ScenicRepository
	logger       *zap.Logger
}

func NewDatasetService(
	poemRepo repositories.PoemRepository,
	heritageRepo repositories.HeritageRepository,
	historyRepo repositories.HistoryRepository,
	scenicRepo repositories.ScenicRepository,
	logger *zap.Logger) DatasetServiceInterface {
	return &DatasetService{
		poemRepo:     poemRepo,
		heritageRepo: heritageRepo,
		historyRepo:  historyRepo,
		scenicRepo:   scenicRepo,
		logger:       logger,
	}
}

// The SQL predicate already excludes invalid coordinates; rows are
// rechecked here so malformed stored values never reach the map client.

func (d *DatasetService) ListPoems(ctx context.Context) ([]db_models.Poem, error) {
	poems, err := d.poemRepo.ListWithCoordinates(ctx)
	if err != nil {
		d.logger.Error("listing poems failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	result := make([]db_models.Poem, 0, len(poems))
	for _, poem := range poems {
		if utils.ValidCoordinate(poem.Longitude, poem.Latitude) {
			result = append(result, poem)
		}
	}
	return result, nil
}

func (d *DatasetService) GetPoemByID(ctx context.Context, id int) (*db_models.Poem, error) {
	poem, err := d.poemRepo.GetByID(ctx, id)
	if err != nil {
		d.logger.Error("poem lookup failed", zap.Int("id", id), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if poem == nil {
		return nil, utils.ErrPoemNotFound
	}
	return poem, nil
}

func (d *DatasetService) ListHeritage(ctx context.Context) ([]db_models.Heritage, error) {
	items, err := d.heritageRepo.ListWithCoordinates(ctx)
	if err != nil {
		d.logger.Error("listing heritage failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	result := make([]db_models.Heritage, 0, len(items))
	for _, item := range items {
		if utils.ValidCoordinate(item.Longitude, item.Latitude) {
			result = append(result, item)
		}
	}
	return result, nil
}

func (d *DatasetService) ListHistory(ctx context.Context) ([]db_models.History, error) {
	items, err := d.historyRepo.ListWithCoordinates(ctx)
	if err != nil {
		d.logger.Error("listing history failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	result := make([]db_models.History, 0, len(items))
	for _, item := range items {
		if utils.ValidCoordinate(item.Longitude, item.Latitude) {
			result = append(result, item)
		}
	}
	return result, nil
}

func (d *DatasetService) ListScenic(ctx context.Context) ([]db_models.Scenic, error) {
	items, err := d.scenicRepo.ListWithCoordinates(ctx)
	if err != nil {
		d.logger.Error("listing scenic spots failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	result := make([]db_models.Scenic, 0, len(items))
	for _, item := range items {
		if utils.ValidCoordinate(item.Longitude, item.Latitude) {
			result = append(result, item)
		}
	}
	return result, nil
}
