package repositories

import (
	"context"

	"gorm.io/gorm"
	"shudao/internal/models/db_models"
)

type HistoryRepository interface {
	ListWithCoordinates(ctx context.Context) ([]db_models.History, error)
}

type historyRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{
		db: db,
	}
}

func (h *historyRepository) ListWithCoordinates(ctx context.Context) ([]db_models.History, error) {
	var items []db_models.History
	err := h.db.WithContext(ctx).
		Where(validCoordinateExpr).
		Order("id ASC").
		Find(&items).Error
	return items, err
}
