package db_models

import "time"

type User struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	Username   string    `gorm:"uniqueIndex" json:"username"`
	Password   string    `json:"-"`
	AvatarURL  *string   `gorm:"column:avatar_url" json:"avatar_url"`
	RoleID     int       `gorm:"column:role_id" json:"role_id"`
	CreateTime time.Time `gorm:"column:create_time;autoCreateTime" json:"create_time"`
}

func (User) TableName() string { return "users.users" }
