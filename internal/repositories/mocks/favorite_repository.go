package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"shudao/internal/models/db_models"
	"shudao/internal/repositories"
)

type FavoriteRepository struct {
	mock.Mock
}

func (m *FavoriteRepository) Exists(ctx context.Context, userID, scenicID int) (bool, error) {
	args := m.Called(ctx, userID, scenicID)
	return args.Bool(0), args.Error(1)
}

func (m *FavoriteRepository) Insert(ctx context.Context, favorite *db_models.Favorite) error {
	args := m.Called(ctx, favorite)
	return args.Error(0)
}

func (m *FavoriteRepository) Delete(ctx context.Context, userID, scenicID int) (int64, error) {
	args := m.Called(ctx, userID, scenicID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *FavoriteRepository) ListByUser(ctx context.Context, userID int) ([]repositories.FavoriteRow, error) {
	args := m.Called(ctx, userID)
	var rows []repositories.FavoriteRow
	if args.Get(0) != nil {
		rows = args.Get(0).([]repositories.FavoriteRow)
	}
	return rows, args.Error(1)
}
