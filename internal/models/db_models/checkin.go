package db_models

import "time"

type Checkin struct {
	ID          int       `gorm:"primaryKey"`
	UserID      int       `gorm:"column:user_id"`
	ScenicID    int       `gorm:"column:scenic_id"`
	Note        *string
	ImageURL    *string   `gorm:"column:image_url"`
	CheckinTime time.Time `gorm:"column:checkin_time;autoCreateTime"`
}

func (Checkin) TableName() string { return "actions.checkins" }
