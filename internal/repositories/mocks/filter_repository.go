package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type FilterRepository struct {
	mock.Mock
}

func (m *FilterRepository) DistinctValues(ctx context.Context, table, column string) ([]string, error) {
	args := m.Called(ctx, table, column)
	var values []string
	if args.Get(0) != nil {
		values = args.Get(0).([]string)
	}
	return values, args.Error(1)
}

func (m *FilterRepository) DistinctKeywordRows(ctx context.Context, limit int) ([]string, error) {
	args := m.Called(ctx, limit)
	var values []string
	if args.Get(0) != nil {
		values = args.Get(0).([]string)
	}
	return values, args.Error(1)
}

func (m *FilterRepository) ScoreRange(ctx context.Context) (*float64, *float64, error) {
	args := m.Called(ctx)
	var min, max *float64
	if args.Get(0) != nil {
		min = args.Get(0).(*float64)
	}
	if args.Get(1) != nil {
		max = args.Get(1).(*float64)
	}
	return min, max, args.Error(2)
}
