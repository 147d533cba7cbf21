package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"shudao/internal/models/db_models"
)

type PoemRepository struct {
	mock.Mock
}

func (m *PoemRepository) ListWithCoordinates(ctx context.Context) ([]db_models.Poem, error) {
	args := m.Called(ctx)
	var poems []db_models.Poem
	if args.Get(0) != nil {
		poems = args.Get(0).([]db_models.Poem)
	}
	return poems, args.Error(1)
}

func (m *PoemRepository) GetByID(ctx context.Context, id int) (*db_models.Poem, error) {
	args := m.Called(ctx, id)
	var poem *db_models.Poem
	if args.Get(0) != nil {
		poem = args.Get(0).(*db_models.Poem)
	}
	return poem, args.Error(1)
}
