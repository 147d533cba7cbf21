package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"shudao/internal/models/db_models"
)

type RouteRepository struct {
	mock.Mock
}

func (m *RouteRepository) ListAll(ctx context.Context) ([]db_models.Route, error) {
	args := m.Called(ctx)
	var routes []db_models.Route
	if args.Get(0) != nil {
		routes = args.Get(0).([]db_models.Route)
	}
	return routes, args.Error(1)
}

func (m *RouteRepository) ListByUser(ctx context.Context, userID int) ([]db_models.Route, error) {
	args := m.Called(ctx, userID)
	var routes []db_models.Route
	if args.Get(0) != nil {
		routes = args.Get(0).([]db_models.Route)
	}
	return routes, args.Error(1)
}

func (m *RouteRepository) GetByID(ctx context.Context, id int) (*db_models.Route, error) {
	args := m.Called(ctx, id)
	var route *db_models.Route
	if args.Get(0) != nil {
		route = args.Get(0).(*db_models.Route)
	}
	return route, args.Error(1)
}

func (m *RouteRepository) Insert(ctx context.Context, route *db_models.Route) error {
	args := m.Called(ctx, route)
	return args.Error(0)
}

func (m *RouteRepository) Update(ctx context.Context, id int, fields map[string]interface{}) (int64, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *RouteRepository) Delete(ctx context.Context, id int) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
