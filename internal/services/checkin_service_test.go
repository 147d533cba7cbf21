package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"shudao/internal/models/db_models"
	"shudao/internal/models/request_models"
	"shudao/internal/repositories"
	"shudao/internal/repositories/mocks"
	"shudao/internal/services"
	"shudao/pkg/utils"
)

func newCheckinService(t *testing.T) (*mocks.CheckinRepository, *mocks.UserRepository, *mocks.ScenicRepository, services.CheckinServiceInterface) {
	t.Helper()
	checkinRepo := new(mocks.CheckinRepository)
	userRepo := new(mocks.UserRepository)
	scenicRepo := new(mocks.ScenicRepository)
	return checkinRepo, userRepo, scenicRepo,
		services.NewCheckinService(checkinRepo, userRepo, scenicRepo, zap.NewNop())
}

func TestCheckinService_Create_Success(t *testing.T) {
	checkinRepo, userRepo, scenicRepo, svc := newCheckinService(t)
	ctx := context.Background()

	note := "gorgeous at dawn"
	userRepo.On("FindByUsername", ctx, "traveler").Return(&db_models.User{ID: 7}, nil).Once()
	checkinRepo.On("Insert", ctx, mock.MatchedBy(func(checkin *db_models.Checkin) bool {
		return checkin.UserID == 7 && checkin.ScenicID == 42 && checkin.Note != nil && *checkin.Note == note
	})).Run(func(args mock.Arguments) {
		created := args.Get(1).(*db_models.Checkin)
		created.ID = 9
		created.CheckinTime = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	}).Return(nil).Once()
	name := "Jianmen Pass"
	scenicRepo.On("Name", ctx, 42).Return(&name, nil).Once()

	checkin, err := svc.CreateCheckin(ctx, request_models.CreateCheckinRequest{
		Username: "traveler",
		ScenicID: 42,
		Note:     &note,
	})

	require.NoError(t, err)
	assert.Equal(t, 9, checkin.ID)
	assert.Equal(t, &name, checkin.ScenicName)
	assert.Equal(t, "2026-03-01T08:00:00Z", checkin.CheckinTime)
	checkinRepo.AssertExpectations(t)
}

func TestCheckinService_Create_UnknownUser(t *testing.T) {
	checkinRepo, userRepo, _, svc := newCheckinService(t)
	ctx := context.Background()

	userRepo.On("FindByUsername", ctx, "ghost").Return(nil, nil).Once()

	_, err := svc.CreateCheckin(ctx, request_models.CreateCheckinRequest{Username: "ghost", ScenicID: 42})

	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrUserNotFound))
	checkinRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCheckinService_List_UnknownUserIsEmpty(t *testing.T) {
	checkinRepo, userRepo, _, svc := newCheckinService(t)
	ctx := context.Background()

	userRepo.On("FindByUsername", ctx, "ghost").Return(nil, nil).Once()

	checkins, err := svc.ListCheckins(ctx, "ghost")

	require.NoError(t, err)
	assert.NotNil(t, checkins)
	assert.Empty(t, checkins)
	checkinRepo.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
}

func TestCheckinService_List_CarriesScenicName(t *testing.T) {
	checkinRepo, userRepo, _, svc := newCheckinService(t)
	ctx := context.Background()

	name := "Jianmen Pass"
	userRepo.On("FindByUsername", ctx, "traveler").Return(&db_models.User{ID: 7}, nil).Once()
	checkinRepo.On("ListByUser", ctx, 7).Return([]repositories.CheckinRow{
		{ID: 9, UserID: 7, ScenicID: 42, ScenicName: &name, CheckinTime: time.Now()},
		{ID: 8, UserID: 7, ScenicID: 404, ScenicName: nil, CheckinTime: time.Now()},
	}, nil).Once()

	checkins, err := svc.ListCheckins(ctx, "traveler")

	require.NoError(t, err)
	require.Len(t, checkins, 2)
	assert.Equal(t, &name, checkins[0].ScenicName)
	assert.Nil(t, checkins[1].ScenicName)
}
