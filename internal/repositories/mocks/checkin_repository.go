package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"shudao/internal/models/db_models"
	"shudao/internal/repositories"
)

type CheckinRepository struct {
	mock.Mock
}

func (m *CheckinRepository) Insert(ctx context.Context, checkin *db_models.Checkin) error {
	args := m.Called(ctx, checkin)
	return args.Error(0)
}

func (m *CheckinRepository) ListByUser(ctx context.Context, userID int) ([]repositories.CheckinRow, error) {
	args := m.Called(ctx, userID)
	var rows []repositories.CheckinRow
	if args.Get(0) != nil {
		rows = args.Get(0).([]repositories.CheckinRow)
	}
	return rows, args.Error(1)
}
