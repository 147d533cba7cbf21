package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"shudao/internal/api/controllers"
	"shudao/internal/models/db_models"
	"shudao/internal/repositories/mocks"
	"shudao/internal/services"
	"shudao/pkg/utils"
)

// The API answers in two dialects. Auth and actions signal failure
// through HTTP status codes with a detail body; routes always answer
// 200 and flag failure in the body. These tests pin both shapes.

func performJSON(t *testing.T, router *gin.Engine, method, target, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	decoded := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
	return recorder, decoded
}

func newAuthRouter(userRepo *mocks.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	authController := controllers.NewAuthController(services.NewAuthService(userRepo, zap.NewNop()))
	router := gin.New()
	router.POST("/api/auth/register", authController.Register)
	router.POST("/api/auth/login", authController.Login)
	return router
}

func newRoutesRouter(routeRepo *mocks.RouteRepository, userRepo *mocks.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	routesController := controllers.NewRoutesController(services.NewRouteService(routeRepo, userRepo, zap.NewNop()))
	router := gin.New()
	router.GET("/api/routes", routesController.ListRoutes)
	router.POST("/api/routes", routesController.CreateRoute)
	router.GET("/api/routes/:id", routesController.GetRouteByID)
	router.DELETE("/api/routes/:id", routesController.DeleteRoute)
	return router
}

func TestAuth_MalformedBodyIsBadRequestDetail(t *testing.T) {
	router := newAuthRouter(new(mocks.UserRepository))

	recorder, body := performJSON(t, router, http.MethodPost, "/api/auth/register", `{"username": "traveler"}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Invalid request format", body["detail"])
}

func TestAuth_WrongPasswordIsUnauthorizedDetail(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	userRepo.On("FindByCredentials", mock.Anything, "traveler", utils.HashPassword("wrong")).
		Return(nil, nil).Once()
	router := newAuthRouter(userRepo)

	recorder, body := performJSON(t, router, http.MethodPost, "/api/auth/login",
		`{"username": "traveler", "password": "wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "Invalid username or password", body["detail"])
}

func TestAuth_RegisterConflictIsBadRequestDetail(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	userRepo.On("FindByUsername", mock.Anything, "traveler").
		Return(&db_models.User{ID: 3, Username: "traveler"}, nil).Once()
	router := newAuthRouter(userRepo)

	recorder, body := performJSON(t, router, http.MethodPost, "/api/auth/register",
		`{"username": "traveler", "password": "wanderlust"}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Username already exists", body["detail"])
}

func TestRoutes_MissingRouteIsFlaggedInsideOK(t *testing.T) {
	routeRepo := new(mocks.RouteRepository)
	routeRepo.On("GetByID", mock.Anything, 99).Return(nil, nil).Once()
	router := newRoutesRouter(routeRepo, new(mocks.UserRepository))

	recorder, body := performJSON(t, router, http.MethodGet, "/api/routes/99", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Route not found", body["error"])
}

func TestRoutes_UnknownUserListIsFlaggedWithEmptyData(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	userRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, nil).Once()
	router := newRoutesRouter(new(mocks.RouteRepository), userRepo)

	recorder, body := performJSON(t, router, http.MethodGet, "/api/routes?username=ghost", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "User not found", body["error"])
	data, ok := body["data"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, data)
}

func TestRoutes_CreateWithoutUsernameIsFlaggedInsideOK(t *testing.T) {
	router := newRoutesRouter(new(mocks.RouteRepository), new(mocks.UserRepository))

	recorder, body := performJSON(t, router, http.MethodPost, "/api/routes",
		`{"name": "Shu road north", "points": [{"longitude": 104.0, "latitude": 30.6}]}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Username is required", body["error"])
}

func TestRoutes_DeleteConfirmsInsideOK(t *testing.T) {
	routeRepo := new(mocks.RouteRepository)
	routeRepo.On("Delete", mock.Anything, 5).Return(int64(1), nil).Once()
	router := newRoutesRouter(routeRepo, new(mocks.UserRepository))

	recorder, body := performJSON(t, router, http.MethodDelete, "/api/routes/5", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Route 5 deleted", body["message"])
}
