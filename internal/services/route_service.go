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

type RouteServiceInterface interface {
	ListRoutes(ctx context.Context, username string) ([]response_models.RouteResponse, error)
	ListRouteSummaries(ctx context.Context, username string) ([]response_models.RouteSummary, error)
	GetRouteByID(ctx context.Context, id int) (*response_models.RouteResponse, error)
	CreateRoute(ctx context.Context, username string, request request_models.CreateRouteRequest) (*response_models.RouteResponse, error)
	UpdateRoute(ctx context.Context, id int, request request_models.UpdateRouteRequest) (*response_models.RouteResponse, error)
	DeleteRoute(ctx context.Context, id int) error
}

type RouteService struct {
	routeRepo repositories.RouteRepository
	userRepo  repositories.UserRepository
	logger    *zap.Logger
}

func NewRouteService(routeRepo repositories.RouteRepository, userRepo repositories.UserRepository, logger *zap.Logger) RouteServiceInterface {
	return &RouteService{
		routeRepo: routeRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// listFor returns all routes, or a single user's routes when a username
// is given. An empty username is the deliberate browse-all mode.
func (r *RouteService) listFor(ctx context.Context, username string) ([]db_models.Route, error) {
	if username == "" {
		return r.routeRepo.ListAll(ctx)
	}

	user, err := r.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return r.routeRepo.ListByUser(ctx, user.ID)
}

func (r *RouteService) ListRoutes(ctx context.Context, username string) ([]response_models.RouteResponse, error) {
	routes, err := r.listFor(ctx, username)
	if err != nil {
		if errors.Is(err, utils.ErrUserNotFound) {
			return nil, err
		}
		r.logger.Error("routes: list failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.RouteResponse, 0, len(routes))
	for i := range routes {
		result = append(result, toRouteResponse(&routes[i]))
	}
	return result, nil
}

func (r *RouteService) ListRouteSummaries(ctx context.Context, username string) ([]response_models.RouteSummary, error) {
	routes, err := r.listFor(ctx, username)
	if err != nil {
		if errors.Is(err, utils.ErrUserNotFound) {
			return nil, err
		}
		r.logger.Error("route summaries: list failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.RouteSummary, 0, len(routes))
	for i := range routes {
		points := routes[i].Points()
		result = append(result, response_models.RouteSummary{
			ID:          routes[i].ID,
			Name:        routes[i].Name,
			Distance:    totalDistance(points),
			PointsCount: len(points),
			CreateTime:  utils.FormatTime(routes[i].CreateTime),
		})
	}
	return result, nil
}

func (r *RouteService) GetRouteByID(ctx context.Context, id int) (*response_models.RouteResponse, error) {
	route, err := r.routeRepo.GetByID(ctx, id)
	if err != nil {
		r.logger.Error("route lookup failed", zap.Int("id", id), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if route == nil {
		return nil, utils.ErrRouteNotFound
	}

	response := toRouteResponse(route)
	return &response, nil
}

func (r *RouteService) CreateRoute(ctx context.Context, username string, request request_models.CreateRouteRequest) (*response_models.RouteResponse, error) {
	if username == "" {
		return nil, utils.ErrUsernameRequired
	}

	user, err := r.userRepo.FindByUsername(ctx, username)
	if err != nil {
		r.logger.Error("route create: user lookup failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	scenicList, err := db_models.EncodePoints(request.Points)
	if err != nil {
		r.logger.Error("route create: point encoding failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	route := &db_models.Route{
		UserID:      user.ID,
		Name:        request.Name,
		ScenicList:  scenicList,
		Description: request.Description,
	}
	if err := r.routeRepo.Insert(ctx, route); err != nil {
		r.logger.Error("route create: insert failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	response := toRouteResponse(route)
	return &response, nil
}

func (r *RouteService) UpdateRoute(ctx context.Context, id int, request request_models.UpdateRouteRequest) (*response_models.RouteResponse, error) {
	fields := map[string]interface{}{}
	if request.Name != nil {
		fields["name"] = *request.Name
	}
	if request.Description != nil {
		fields["description"] = *request.Description
	}
	if request.Points != nil {
		scenicList, err := db_models.EncodePoints(*request.Points)
		if err != nil {
			r.logger.Error("route update: point encoding failed", zap.Error(err))
			return nil, utils.ErrDatabaseError
		}
		fields["scenic_list"] = scenicList
	}

	if len(fields) == 0 {
		return nil, utils.ErrNoFieldsToUpdate
	}

	existing, err := r.routeRepo.GetByID(ctx, id)
	if err != nil {
		r.logger.Error("route update: lookup failed", zap.Int("id", id), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, utils.ErrRouteNotFound
	}

	if _, err := r.routeRepo.Update(ctx, id, fields); err != nil {
		r.logger.Error("route update: update failed", zap.Int("id", id), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	updated, err := r.routeRepo.GetByID(ctx, id)
	if err != nil || updated == nil {
		r.logger.Error("route update: reload failed", zap.Int("id", id), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	response := toRouteResponse(updated)
	return &response, nil
}

func (r *RouteService) DeleteRoute(ctx context.Context, id int) error {
	deleted, err := r.routeRepo.Delete(ctx, id)
	if err != nil {
		r.logger.Error("route delete failed", zap.Int("id", id), zap.Error(err))
		return utils.ErrDatabaseError
	}
	if deleted == 0 {
		return utils.ErrRouteNotFound
	}
	return nil
}

func toRouteResponse(route *db_models.Route) response_models.RouteResponse {
	points := route.Points()
	return response_models.RouteResponse{
		ID:          route.ID,
		UserID:      route.UserID,
		Name:        route.Name,
		Points:      points,
		Description: route.Description,
		CreateTime:  utils.FormatTime(route.CreateTime),
		Distance:    totalDistance(points),
	}
}

// totalDistance sums the haversine distance over consecutive points,
// rounded to two decimals. Fewer than two points is distance zero.
func totalDistance(points []db_models.RoutePoint) float64 {
	if len(points) < 2 {
		return 0
	}

	var total float64
	for i := 0; i < len(points)-1; i++ {
		total += utils.HaversineKm(
			points[i].Latitude, points[i].Longitude,
			points[i+1].Latitude, points[i+1].Longitude)
	}
	return utils.Round2(total)
}
