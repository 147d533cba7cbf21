package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"shudao/internal/models/db_models"
)

type RouteRepository interface {
	ListAll(ctx context.Context) ([]db_models.Route, error)
	ListByUser(ctx context.Context, userID int) ([]db_models.Route, error)
	GetByID(ctx context.Context, id int) (*db_models.Route, error)
	Insert(ctx context.Context, route *db_models.Route) error
	Update(ctx context.Context, id int, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
}

type routeRepository struct {
	db *gorm.DB
}

func NewRouteRepository(db *gorm.DB) RouteRepository {
	return &routeRepository{
		db: db,
	}
}

func (r *routeRepository) ListAll(ctx context.Context) ([]db_models.Route, error) {
	var routes []db_models.Route
	err := r.db.WithContext(ctx).
		Order("create_time DESC").
		Find(&routes).Error
	return routes, err
}

func (r *routeRepository) ListByUser(ctx context.Context, userID int) ([]db_models.Route, error) {
	var routes []db_models.Route
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("create_time DESC").
		Find(&routes).Error
	return routes, err
}

func (r *routeRepository) GetByID(ctx context.Context, id int) (*db_models.Route, error) {
	var route db_models.Route
	err := r.db.WithContext(ctx).First(&route, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &route, nil
}

func (r *routeRepository) Insert(ctx context.Context, route *db_models.Route) error {
	return r.db.WithContext(ctx).Create(route).Error
}

func (r *routeRepository) Update(ctx context.Context, id int, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&db_models.Route{}).
		Where("id = ?", id).
		Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *routeRepository) Delete(ctx context.Context, id int) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&db_models.Route{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
