package services

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"shudao/internal/models/db_models"
	"shudao/internal/models/request_models"
	"shudao/internal/models/response_models"
	"shudao/internal/repositories"
	"shudao/pkg/utils"
)

type FavoriteServiceInterface interface {
	CreateFavorite(ctx context.Context, request request_models.CreateFavoriteRequest) (*response_models.FavoriteResponse, error)
	DeleteFavorite(ctx context.Context, username string, scenicID int) error
	ListFavorites(ctx context.Context, username string) ([]response_models.FavoriteResponse, error)
	IsFavorited(ctx context.Context, username string, scenicID int) (bool, error)
}

type FavoriteService struct {
	favoriteRepo repositories.FavoriteRepository
	userRepo     repositories.UserRepository
	scenicRepo   repositories.ScenicRepository
	logger       *zap.Logger
}

func NewFavoriteService(
	favoriteRepo repositories.FavoriteRepository,
	userRepo repositories.UserRepository,
	scenicRepo repositories.ScenicRepository,
	logger *zap.Logger) FavoriteServiceInterface {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		userRepo:     userRepo,
		scenicRepo:   scenicRepo,
		logger:       logger,
	}
}

func (f *FavoriteService) CreateFavorite(ctx context.Context, request request_models.CreateFavoriteRequest) (*response_models.FavoriteResponse, error) {
	user, err := f.userRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		f.logger.Error("favorite: user lookup failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	exists, err := f.favoriteRepo.Exists(ctx, user.ID, request.ScenicID)
	if err != nil {
		f.logger.Error("favorite: existence check failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if exists {
		return nil, utils.ErrAlreadyFavorited
	}

	favorite := &db_models.Favorite{
		UserID:   user.ID,
		ScenicID: request.ScenicID,
	}
	if err := f.favoriteRepo.Insert(ctx, favorite); err != nil {
		// Two identical creates can both pass the check above; the
		// unique index turns the loser into the same conflict.
		if errors.Is(err, repositories.ErrDuplicateEntry) {
			return nil, utils.ErrAlreadyFavorited
		}
		f.logger.Error("favorite: insert failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	scenicName, err := f.scenicRepo.Name(ctx, request.ScenicID)
	if err != nil {
		f.logger.Error("favorite: scenic name lookup failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return &response_models.FavoriteResponse{
		ID:         favorite.ID,
		UserID:     favorite.UserID,
		ScenicID:   favorite.ScenicID,
		ScenicName: scenicName,
		CreateTime: utils.FormatTime(favorite.CreateTime),
	}, nil
}

func (f *FavoriteService) DeleteFavorite(ctx context.Context, username string, scenicID int) error {
	user, err := f.userRepo.FindByUsername(ctx, username)
	if err != nil {
		f.logger.Error("favorite: user lookup failed", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrUserNotFound
	}

	deleted, err := f.favoriteRepo.Delete(ctx, user.ID, scenicID)
	if err != nil {
		f.logger.Error("favorite: delete failed", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if deleted == 0 {
		return utils.ErrFavoriteNotFound
	}
	return nil
}

func (f *FavoriteService) ListFavorites(ctx context.Context, username string) ([]response_models.FavoriteResponse, error) {
	user, err := f.userRepo.FindByUsername(ctx, username)
	if err != nil {
		f.logger.Error("favorites: user lookup failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return []response_models.FavoriteResponse{}, nil
	}

	rows, err := f.favoriteRepo.ListByUser(ctx, user.ID)
	if err != nil {
		f.logger.Error("favorites: list failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.FavoriteResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, response_models.FavoriteResponse{
			ID:         row.ID,
			UserID:     row.UserID,
			ScenicID:   row.ScenicID,
			ScenicName: row.ScenicName,
			CreateTime: utils.FormatTime(row.CreateTime),
		})
	}
	return result, nil
}

// IsFavorited treats an unknown username as "not favorited" rather than
// an error.
func (f *FavoriteService) IsFavorited(ctx context.Context, username string, scenicID int) (bool, error) {
	user, err := f.userRepo.FindByUsername(ctx, username)
	if err != nil {
		f.logger.Error("favorite check: user lookup failed", zap.Error(err))
		return false, utils.ErrDatabaseError
	}
	if user == nil {
		return false, nil
	}

	exists, err := f.favoriteRepo.Exists(ctx, user.ID, scenicID)
	if err != nil {
		f.logger.Error("favorite check: existence check failed", zap.Error(err))
		return false, utils.ErrDatabaseError
	}
	return exists, nil
}
