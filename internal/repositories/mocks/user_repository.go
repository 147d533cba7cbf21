package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"shudao/internal/models/db_models"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) FindByUsername(ctx context.Context, username string) (*db_models.User, error) {
	args := m.Called(ctx, username)
	var user *db_models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*db_models.User)
	}
	return user, args.Error(1)
}

func (m *UserRepository) FindByCredentials(ctx context.Context, username, passwordHash string) (*db_models.User, error) {
	args := m.Called(ctx, username, passwordHash)
	var user *db_models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*db_models.User)
	}
	return user, args.Error(1)
}

func (m *UserRepository) Insert(ctx context.Context, user *db_models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
