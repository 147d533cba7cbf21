package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"shudao/internal/models/db_models"
)

type HistoryRepository struct {
	mock.Mock
}

func (m *HistoryRepository) ListWithCoordinates(ctx context.Context) ([]db_models.History, error) {
	args := m.Called(ctx)
	var items []db_models.History
	if args.Get(0) != nil {
		items = args.Get(0).([]db_models.History)
	}
	return items, args.Error(1)
}
