package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"shudao/internal/models/db_models"
)

type ScenicRepository struct {
	mock.Mock
}

func (m *ScenicRepository) ListWithCoordinates(ctx context.Context) ([]db_models.Scenic, error) {
	args := m.Called(ctx)
	var items []db_models.Scenic
	if args.Get(0) != nil {
		items = args.Get(0).([]db_models.Scenic)
	}
	return items, args.Error(1)
}

func (m *ScenicRepository) Name(ctx context.Context, id int) (*string, error) {
	args := m.Called(ctx, id)
	var name *string
	if args.Get(0) != nil {
		name = args.Get(0).(*string)
	}
	return name, args.Error(1)
}
