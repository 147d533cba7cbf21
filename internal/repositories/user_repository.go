package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"shudao/internal/models/db_models"
)

type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*db_models.User, error)
	FindByCredentials(ctx context.Context, username, passwordHash string) (*db_models.User, error)
	Insert(ctx context.Context, user *db_models.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (u *userRepository) FindByUsername(ctx context.Context, username string) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "username = ?", username).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (u *userRepository) FindByCredentials(ctx context.Context, username, passwordHash string) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).
		Where("username = ? AND password = ?", username, passwordHash).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (u *userRepository) Insert(ctx context.Context, user *db_models.User) error {
	err := u.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEntry
	}
	return err
}
