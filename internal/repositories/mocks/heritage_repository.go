package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"shudao/internal/models/db_models"
)

type HeritageRepository struct {
	mock.Mock
}

func (m *HeritageRepository) ListWithCoordinates(ctx context.Context) ([]db_models.Heritage, error) {
	args := m.Called(ctx)
	var items []db_models.Heritage
	if args.Get(0) != nil {
		items = args.Get(0).([]db_models.Heritage)
	}
	return items, args.Error(1)
}
