package services

import (
	"context"

	"go.uber.org/zap"
	"shudao/internal/models/db_models"
	"shudao/internal/models/request_models"
	"shudao/internal/models/response_models"
	"shudao/internal/repositories"
	"shudao/pkg/utils"
)

type CheckinServiceInterface interface {
	CreateCheckin(ctx context.Context, request request_models.CreateCheckinRequest) (*response_models.CheckinResponse, error)
	ListCheckins(ctx context.Context, username string) ([]response_models.CheckinResponse, error)
}

type CheckinService struct {
	checkinRepo repositories.CheckinRepository
	userRepo    repositories.UserRepository
	scenicRepo  repositories.ScenicRepository
	logger      *zap.Logger
}

func NewCheckinService(
	checkinRepo repositories.CheckinRepository,
	userRepo repositories.UserRepository,
	scenicRepo repositories.ScenicRepository,
	logger *zap.Logger) CheckinServiceInterface {
	return &CheckinService{
		checkinRepo: checkinRepo,
		userRepo:    userRepo,
		scenicRepo:  scenicRepo,
		logger:      logger,
	}
}

func (c *CheckinService) CreateCheckin(ctx context.Context, request request_models.CreateCheckinRequest) (*response_models.CheckinResponse, error) {
	user, err := c.userRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		c.logger.Error("checkin: user lookup failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	checkin := &db_models.Checkin{
		UserID:   user.ID,
		ScenicID: request.ScenicID,
		Note:     request.Note,
		ImageURL: request.ImageURL,
	}
	if err := c.checkinRepo.Insert(ctx, checkin); err != nil {
		c.logger.Error("checkin: insert failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	scenicName, err := c.scenicRepo.Name(ctx, request.ScenicID)
	if err != nil {
		c.logger.Error("checkin: scenic name lookup failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CheckinResponse{
		ID:          checkin.ID,
		UserID:      checkin.UserID,
		ScenicID:    checkin.ScenicID,
		ScenicName:  scenicName,
		Note:        checkin.Note,
		ImageURL:    checkin.ImageURL,
		CheckinTime: utils.FormatTime(checkin.CheckinTime),
	}, nil
}

func (c *CheckinService) ListCheckins(ctx context.Context, username string) ([]response_models.CheckinResponse, error) {
	user, err := c.userRepo.FindByUsername(ctx, username)
	if err != nil {
		c.logger.Error("checkins: user lookup failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	// An unknown username yields an empty list, not an error.
	if user == nil {
		return []response_models.CheckinResponse{}, nil
	}

	rows, err := c.checkinRepo.ListByUser(ctx, user.ID)
	if err != nil {
		c.logger.Error("checkins: list failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.CheckinResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, response_models.CheckinResponse{
			ID:          row.ID,
			UserID:      row.UserID,
			ScenicID:    row.ScenicID,
			ScenicName:  row.ScenicName,
			Note:        row.Note,
			ImageURL:    row.ImageURL,
			CheckinTime: utils.FormatTime(row.CheckinTime),
		})
	}
	return result, nil
}
