package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
	"shudao/internal/models/db_models"
)

// CheckinRow is a checkin joined with the scenic display name at read
// time. ScenicName stays nil when the scenic row no longer exists.
type CheckinRow struct {
	ID          int
	UserID      int
	ScenicID    int
	Note        *string
	ImageURL    *string
	CheckinTime time.Time
	ScenicName  *string
}

type CheckinRepository interface {
	Insert(ctx context.Context, checkin *db_models.Checkin) error
	ListByUser(ctx context.Context, userID int) ([]CheckinRow, error)
}

type checkinRepository struct {
	db *gorm.DB
}

func NewCheckinRepository(db *gorm.DB) CheckinRepository {
	return &checkinRepository{
		db: db,
	}
}

func (c *checkinRepository) Insert(ctx context.Context, checkin *db_models.Checkin) error {
	return c.db.WithContext(ctx).Create(checkin).Error
}

func (c *checkinRepository) ListByUser(ctx context.Context, userID int) ([]CheckinRow, error) {
	var rows []CheckinRow
	err := c.db.WithContext(ctx).
		Table("actions.checkins AS c").
		Select("c.id, c.user_id, c.scenic_id, c.note, c.image_url, c.checkin_time, s.name AS scenic_name").
		Joins("LEFT JOIN scenic.scenic s ON c.scenic_id = s.id").
		Where("c.user_id = ?", userID).
		Order("c.checkin_time DESC").
		Scan(&rows).Error
	return rows, err
}
