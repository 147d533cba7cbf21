package repositories

import (
	"context"

	"gorm.io/gorm"
	"shudao/internal/models/db_models"
)

type ScenicRepository interface {
	ListWithCoordinates(ctx context.Context) ([]db_models.Scenic, error)
	Name(ctx context.Context, id int) (*string, error)
}

type scenicRepository struct {
	db *gorm.DB
}

func NewScenicRepository(db *gorm.DB) ScenicRepository {
	return &scenicRepository{
		db: db,
	}
}

func (s *scenicRepository) ListWithCoordinates(ctx context.Context) ([]db_models.Scenic, error) {
	var items []db_models.Scenic
	err := s.db.WithContext(ctx).
		Where(validCoordinateExpr).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

// Name returns the display name of a scenic spot, or nil when the row
// does not exist.
func (s *scenicRepository) Name(ctx context.Context, id int) (*string, error) {
	var names []string
	err := s.db.WithContext(ctx).
		Model(&db_models.Scenic{}).
		Where("id = ?", id).
		Limit(1).
		Pluck("name", &names).Error
	if err != nil || len(names) == 0 {
		return nil, err
	}
	return &names[0], nil
}
