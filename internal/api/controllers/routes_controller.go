package controllers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"shudao/internal/models/request_models"
	"shudao/internal/services"
	"shudao/pkg/utils"
)

// RoutesController manages user-drawn travel routes. The whole group
// answers in the always-200 dialect, including client errors such as a
// missing username on mutation.
type RoutesController struct {
	routeService services.RouteServiceInterface
}

func NewRoutesController(routeService services.RouteServiceInterface) *RoutesController {
	return &RoutesController{
		routeService: routeService,
	}
}

// ListRoutes godoc
// @Summary List routes with decoded points and computed distance
// @Tags Routes
// @Produce json
// @Param username query string false "Filter by owner; omit to browse all routes"
// @Success 200
// @Router /api/routes [get]
func (rc *RoutesController) ListRoutes(c *gin.Context) {
	routes, err := rc.routeService.ListRoutes(c.Request.Context(), c.Query("username"))
	if err != nil {
		rc.respondListError(c, err)
		return
	}
	utils.RespondList(c, routes, len(routes))
}

func (rc *RoutesController) ListRouteSummaries(c *gin.Context) {
	summaries, err := rc.routeService.ListRouteSummaries(c.Request.Context(), c.Query("username"))
	if err != nil {
		rc.respondListError(c, err)
		return
	}
	utils.RespondList(c, summaries, len(summaries))
}

func (rc *RoutesController) GetRouteByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondFlagError(c, "Invalid route ID")
		return
	}

	route, err := rc.routeService.GetRouteByID(c.Request.Context(), id)
	if err != nil {
		rc.respondError(c, err)
		return
	}
	utils.RespondItem(c, route)
}

// CreateRoute godoc
// @Summary Create a named route from an ordered point sequence
// @Tags Routes
// @Accept json
// @Produce json
// @Param username query string true "Owner username"
// @Param request body request_models.CreateRouteRequest true "Route payload"
// @Success 200
// @Router /api/routes [post]
func (rc *RoutesController) CreateRoute(c *gin.Context) {
	var req request_models.CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondFlagError(c, "Invalid request format")
		return
	}

	route, err := rc.routeService.CreateRoute(c.Request.Context(), c.Query("username"), req)
	if err != nil {
		rc.respondError(c, err)
		return
	}
	utils.RespondItem(c, route)
}

func (rc *RoutesController) UpdateRoute(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondFlagError(c, "Invalid route ID")
		return
	}

	var req request_models.UpdateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondFlagError(c, "Invalid request format")
		return
	}

	route, err := rc.routeService.UpdateRoute(c.Request.Context(), id, req)
	if err != nil {
		rc.respondError(c, err)
		return
	}
	utils.RespondItem(c, route)
}

func (rc *RoutesController) DeleteRoute(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondFlagError(c, "Invalid route ID")
		return
	}

	if err := rc.routeService.DeleteRoute(c.Request.Context(), id); err != nil {
		rc.respondError(c, err)
		return
	}
	utils.RespondFlagMessage(c, fmt.Sprintf("Route %d deleted", id))
}

func (rc *RoutesController) respondError(c *gin.Context, err error) {
	utils.RespondFlagError(c, routeErrorMessage(err))
}

func (rc *RoutesController) respondListError(c *gin.Context, err error) {
	utils.RespondFlagListError(c, routeErrorMessage(err))
}

func routeErrorMessage(err error) string {
	switch {
	case errors.Is(err, utils.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, utils.ErrUsernameRequired):
		return "Username is required"
	case errors.Is(err, utils.ErrRouteNotFound):
		return "Route not found"
	case errors.Is(err, utils.ErrNoFieldsToUpdate):
		return "No fields to update"
	default:
		return err.Error()
	}
}
