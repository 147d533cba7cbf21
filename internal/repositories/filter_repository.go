package repositories

import (
	"context"

	"gorm.io/gorm"
)

// FilterRepository aggregates distinct categorical values across the
// reference tables. Table and column names always come from the fixed
// whitelist in the filter service, never from request input.
type FilterRepository interface {
	DistinctValues(ctx context.Context, table, column string) ([]string, error)
	DistinctKeywordRows(ctx context.Context, limit int) ([]string, error)
	ScoreRange(ctx context.Context) (*float64, *float64, error)
}

type filterRepository struct {
	db *gorm.DB
}

func NewFilterRepository(db *gorm.DB) FilterRepository {
	return &filterRepository{
		db: db,
	}
}

func (f *filterRepository) DistinctValues(ctx context.Context, table, column string) ([]string, error) {
	var values []string
	err := f.db.WithContext(ctx).
		Table(table).
		Distinct(column).
		Where(column + " IS NOT NULL AND " + column + " != ''").
		Order(column).
		Pluck(column, &values).Error
	return values, err
}

func (f *filterRepository) DistinctKeywordRows(ctx context.Context, limit int) ([]string, error) {
	var values []string
	err := f.db.WithContext(ctx).
		Table("poems.poems").
		Distinct("keywords").
		Where("keywords IS NOT NULL AND keywords != ''").
		Limit(limit).
		Pluck("keywords", &values).Error
	return values, err
}

type scoreRangeRow struct {
	MinScore *float64
	MaxScore *float64
}

func (f *filterRepository) ScoreRange(ctx context.Context) (*float64, *float64, error) {
	var row scoreRangeRow
	err := f.db.WithContext(ctx).
		Table("scenic.scenic").
		Select("MIN(score) AS min_score, MAX(score) AS max_score").
		Where("score IS NOT NULL").
		Scan(&row).Error
	return row.MinScore, row.MaxScore, err
}
