package db_models

import "time"

// Favorite is unique per (user, scenic spot). The database constraint
// closes the race the application-level existence check alone would
// leave open under concurrent identical creates.
type Favorite struct {
	ID         int       `gorm:"primaryKey"`
	UserID     int       `gorm:"column:user_id;uniqueIndex:uq_favorites_user_scenic"`
	ScenicID   int       `gorm:"column:scenic_id;uniqueIndex:uq_favorites_user_scenic"`
	CreateTime time.Time `gorm:"column:create_time;autoCreateTime"`
}

func (Favorite) TableName() string { return "actions.favorites" }
