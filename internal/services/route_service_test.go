package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"shudao/internal/models/db_models"
	"shudao/internal/models/request_models"
	"shudao/internal/repositories/mocks"
	"shudao/internal/services"
	"shudao/pkg/utils"
)

func newRouteService(t *testing.T) (*mocks.RouteRepository, *mocks.UserRepository, services.RouteServiceInterface) {
	t.Helper()
	routeRepo := new(mocks.RouteRepository)
	userRepo := new(mocks.UserRepository)
	return routeRepo, userRepo, services.NewRouteService(routeRepo, userRepo, zap.NewNop())
}

func encodedPoints(t *testing.T, points []db_models.RoutePoint) datatypes.JSON {
	t.Helper()
	blob, err := db_models.EncodePoints(points)
	require.NoError(t, err)
	return blob
}

func TestRouteService_Create_RequiresUsername(t *testing.T) {
	routeRepo, _, svc := newRouteService(t)

	_, err := svc.CreateRoute(context.Background(), "", request_models.CreateRouteRequest{
		Name:   "Shu road north",
		Points: []db_models.RoutePoint{{Longitude: 104.0, Latitude: 30.6}},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrUsernameRequired))
	routeRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestRouteService_Create_UnknownUser(t *testing.T) {
	routeRepo, userRepo, svc := newRouteService(t)
	ctx := context.Background()

	userRepo.On("FindByUsername", ctx, "ghost").Return(nil, nil).Once()

	_, err := svc.CreateRoute(ctx, "ghost", request_models.CreateRouteRequest{
		Name:   "Shu road north",
		Points: []db_models.RoutePoint{{Longitude: 104.0, Latitude: 30.6}},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrUserNotFound))
	routeRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestRouteService_Create_ComputesDistance(t *testing.T) {
	routeRepo, userRepo, svc := newRouteService(t)
	ctx := context.Background()

	points := []db_models.RoutePoint{
		{Longitude: 104.0, Latitude: 30.6},
		{Longitude: 104.1, Latitude: 30.7},
	}
	userRepo.On("FindByUsername", ctx, "traveler").Return(&db_models.User{ID: 7}, nil).Once()
	routeRepo.On("Insert", ctx, mock.MatchedBy(func(route *db_models.Route) bool {
		return route.UserID == 7 && route.Name == "Shu road north"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*db_models.Route).ID = 5
	}).Return(nil).Once()

	created, err := svc.CreateRoute(ctx, "traveler", request_models.CreateRouteRequest{
		Name:   "Shu road north",
		Points: points,
	})

	require.NoError(t, err)
	assert.Equal(t, 5, created.ID)
	require.Len(t, created.Points, 2)
	want := utils.Round2(utils.HaversineKm(30.6, 104.0, 30.7, 104.1))
	assert.Equal(t, want, created.Distance)
	routeRepo.AssertExpectations(t)
}

func TestRouteService_Get_MalformedPointsDegradeToEmpty(t *testing.T) {
	routeRepo, _, svc := newRouteService(t)
	ctx := context.Background()

	routeRepo.On("GetByID", ctx, 5).Return(&db_models.Route{
		ID:         5,
		Name:       "corrupted",
		ScenicList: datatypes.JSON([]byte(`{"not":"a list"`)),
	}, nil).Once()

	route, err := svc.GetRouteByID(ctx, 5)

	require.NoError(t, err)
	assert.NotNil(t, route.Points)
	assert.Empty(t, route.Points)
	assert.Equal(t, 0.0, route.Distance)
}

func TestRouteService_SinglePointRouteHasZeroDistance(t *testing.T) {
	routeRepo, _, svc := newRouteService(t)
	ctx := context.Background()

	single := []db_models.RoutePoint{{Longitude: 104.0, Latitude: 30.6}}
	routeRepo.On("GetByID", ctx, 5).Return(&db_models.Route{
		ID:         5,
		Name:       "lone marker",
		ScenicList: encodedPoints(t, single),
	}, nil).Once()

	route, err := svc.GetRouteByID(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, 0.0, route.Distance)
}

func TestRouteService_Update_NoFields(t *testing.T) {
	routeRepo, _, svc := newRouteService(t)

	_, err := svc.UpdateRoute(context.Background(), 5, request_models.UpdateRouteRequest{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrNoFieldsToUpdate))
	routeRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestRouteService_Update_NotFound(t *testing.T) {
	routeRepo, _, svc := newRouteService(t)
	ctx := context.Background()
	name := "renamed"

	routeRepo.On("GetByID", ctx, 99).Return(nil, nil).Once()

	_, err := svc.UpdateRoute(ctx, 99, request_models.UpdateRouteRequest{Name: &name})

	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrRouteNotFound))
	routeRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestRouteService_Update_PartialFieldsOnly(t *testing.T) {
	routeRepo, _, svc := newRouteService(t)
	ctx := context.Background()
	name := "renamed"

	existing := &db_models.Route{ID: 5, Name: "old", ScenicList: encodedPoints(t, nil)}
	updated := &db_models.Route{ID: 5, Name: name, ScenicList: encodedPoints(t, nil)}
	routeRepo.On("GetByID", ctx, 5).Return(existing, nil).Once()
	routeRepo.On("Update", ctx, 5, mock.MatchedBy(func(fields map[string]interface{}) bool {
		_, hasName := fields["name"]
		_, hasPoints := fields["scenic_list"]
		_, hasDescription := fields["description"]
		return hasName && !hasPoints && !hasDescription
	})).Return(int64(1), nil).Once()
	routeRepo.On("GetByID", ctx, 5).Return(updated, nil).Once()

	route, err := svc.UpdateRoute(ctx, 5, request_models.UpdateRouteRequest{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "renamed", route.Name)
	routeRepo.AssertExpectations(t)
}

func TestRouteService_Delete_NotFound(t *testing.T) {
	routeRepo, _, svc := newRouteService(t)
	ctx := context.Background()

	routeRepo.On("Delete", ctx, 99).Return(int64(0), nil).Once()

	err := svc.DeleteRoute(ctx, 99)

	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrRouteNotFound))
}

func TestRouteService_List_UnknownUser(t *testing.T) {
	_, userRepo, svc := newRouteService(t)
	ctx := context.Background()

	userRepo.On("FindByUsername", ctx, "ghost").Return(nil, nil).Once()

	_, err := svc.ListRoutes(ctx, "ghost")

	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrUserNotFound))
}

func TestRouteService_Summaries_CountPoints(t *testing.T) {
	routeRepo, _, svc := newRouteService(t)
	ctx := context.Background()

	points := []db_models.RoutePoint{
		{Longitude: 104.0, Latitude: 30.6},
		{Longitude: 104.1, Latitude: 30.7},
		{Longitude: 104.2, Latitude: 30.8},
	}
	routeRepo.On("ListAll", ctx).Return([]db_models.Route{
		{ID: 1, Name: "long walk", ScenicList: encodedPoints(t, points)},
		{ID: 2, Name: "empty draft", ScenicList: encodedPoints(t, nil)},
	}, nil).Once()

	summaries, err := svc.ListRouteSummaries(ctx, "")

	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, 3, summaries[0].PointsCount)
	assert.Positive(t, summaries[0].Distance)
	assert.Equal(t, 0, summaries[1].PointsCount)
	assert.Equal(t, 0.0, summaries[1].Distance)
}
