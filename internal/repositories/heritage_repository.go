package repositories

import (
	"context"

	"gorm.io/gorm"
	"shudao/internal/models/db_models"
)

type HeritageRepository interface {
	ListWithCoordinates(ctx context.Context) ([]db_models.Heritage, error)
}

type heritageRepository struct {
	db *gorm.DB
}

func NewHeritageRepository(db *gorm.DB) HeritageRepository {
	return &heritageRepository{
		db: db,
	}
}

func (h *heritageRepository) ListWithCoordinates(ctx context.Context) ([]db_models.Heritage, error) {
	var items []db_models.Heritage
	err := h.db.WithContext(ctx).
		Where(validCoordinateExpr).
		Order("id ASC").
		Find(&items).Error
	return items, err
}
