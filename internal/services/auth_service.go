package services

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"shudao/internal/models/db_models"
	"shudao/internal/models/request_models"
	"shudao/internal/models/response_models"
	"shudao/internal/repositories"
	"shudao/pkg/utils"
)

const defaultRoleID = 1

type AuthServiceInterface interface {
	Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.RegisteredUser, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoggedInUser, error)
}

type AuthService struct {
	userRepo repositories.UserRepository
	logger   *zap.Logger
}

func NewAuthService(userRepo repositories.UserRepository, logger *zap.Logger) AuthServiceInterface {
	return &AuthService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (a *AuthService) Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.RegisteredUser, error) {
	existing, err := a.userRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		a.logger.Error("register: username lookup failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrUsernameTaken
	}

	newUser := &db_models.User{
		Username: request.Username,
		Password: utils.HashPassword(request.Password),
		RoleID:   defaultRoleID,
	}

	if err := a.userRepo.Insert(ctx, newUser); err != nil {
		// The unique index can still fire between the check and the
		// insert; report it as the same conflict.
		if errors.Is(err, repositories.ErrDuplicateEntry) {
			return nil, utils.ErrUsernameTaken
		}
		a.logger.Error("register: insert failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return &response_models.RegisteredUser{
		ID:         newUser.ID,
		Username:   newUser.Username,
		CreateTime: utils.FormatTime(newUser.CreateTime),
	}, nil
}

func (a *AuthService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoggedInUser, error) {
	// The stored digest is deterministic, so the lookup matches on
	// username plus hash directly. No token or session is issued;
	// clients resubmit the username on every later request.
	user, err := a.userRepo.FindByCredentials(ctx, request.Username, utils.HashPassword(request.Password))
	if err != nil {
		a.logger.Error("login: credential lookup failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoggedInUser{
		ID:         user.ID,
		Username:   user.Username,
		AvatarURL:  user.AvatarURL,
		CreateTime: utils.FormatTime(user.CreateTime),
		RoleID:     user.RoleID,
	}, nil
}
