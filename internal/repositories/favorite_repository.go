package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"shudao/internal/models/db_models"
)

type FavoriteRow struct {
	ID         int
	UserID     int
	ScenicID   int
	CreateTime time.Time
	ScenicName *string
}

type FavoriteRepository interface {
	Exists(ctx context.Context, userID, scenicID int) (bool, error)
	Insert(ctx context.Context, favorite *db_models.Favorite) error
	Delete(ctx context.Context, userID, scenicID int) (int64, error)
	ListByUser(ctx context.Context, userID int) ([]FavoriteRow, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{
		db: db,
	}
}

func (f *favoriteRepository) Exists(ctx context.Context, userID, scenicID int) (bool, error) {
	var count int64
	err := f.db.WithContext(ctx).
		Model(&db_models.Favorite{}).
		Where("user_id = ? AND scenic_id = ?", userID, scenicID).
		Count(&count).Error
	return count > 0, err
}

func (f *favoriteRepository) Insert(ctx context.Context, favorite *db_models.Favorite) error {
	err := f.db.WithContext(ctx).Create(favorite).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEntry
	}
	return err
}

func (f *favoriteRepository) Delete(ctx context.Context, userID, scenicID int) (int64, error) {
	result := f.db.WithContext(ctx).
		Where("user_id = ? AND scenic_id = ?", userID, scenicID).
		Delete(&db_models.Favorite{})
	return result.RowsAffected, result.Error
}

func (f *favoriteRepository) ListByUser(ctx context.Context, userID int) ([]FavoriteRow, error) {
	var rows []FavoriteRow
	err := f.db.WithContext(ctx).
		Table("actions.favorites AS f").
		Select("f.id, f.user_id, f.scenic_id, f.create_time, s.name AS scenic_name").
		Joins("LEFT JOIN scenic.scenic s ON f.scenic_id = s.id").
		Where("f.user_id = ?", userID).
		Order("f.create_time DESC").
		Scan(&rows).Error
	return rows, err
}
