package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"shudao/internal/models/db_models"
)

type PoemRepository interface {
	ListWithCoordinates(ctx context.Context) ([]db_models.Poem, error)
	GetByID(ctx context.Context, id int) (*db_models.Poem, error)
}

type poemRepository struct {
	db *gorm.DB
}

func NewPoemRepository(db *gorm.DB) PoemRepository {
	return &poemRepository{
		db: db,
	}
}

func (p *poemRepository) ListWithCoordinates(ctx context.Context) ([]db_models.Poem, error) {
	var poems []db_models.Poem
	err := p.db.WithContext(ctx).
		Where(validCoordinateExpr).
		Order("id ASC").
		Find(&poems).Error
	return poems, err
}

func (p *poemRepository) GetByID(ctx context.Context, id int) (*db_models.Poem, error) {
	var poem db_models.Poem
	err := p.db.WithContext(ctx).First(&poem, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &poem, nil
}
