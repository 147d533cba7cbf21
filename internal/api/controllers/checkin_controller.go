package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"shudao/internal/models/request_models"
	"shudao/internal/services"
	"shudao/pkg/utils"
)

type CheckinController struct {
	checkinService services.CheckinServiceInterface
}

func NewCheckinController(checkinService services.CheckinServiceInterface) *CheckinController {
	return &CheckinController{
		checkinService: checkinService,
	}
}

// CreateCheckin godoc
// @Summary Record a scenic spot checkin
// @Tags Actions
// @Accept json
// @Produce json
// @Param request body request_models.CreateCheckinRequest true "Checkin payload"
// @Success 200
// @Failure 404
// @Router /api/actions/checkins [post]
func (cc *CheckinController) CreateCheckin(c *gin.Context) {
	var req request_models.CreateCheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondDetail(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	checkin, err := cc.checkinService.CreateCheckin(c.Request.Context(), req)
	if err != nil {
		utils.HandleActionError(c, err)
		return
	}

	c.JSON(http.StatusOK, checkin)
}

// ListCheckins returns a user's checkins, newest first. Unknown
// usernames yield an empty list.
func (cc *CheckinController) ListCheckins(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		utils.RespondDetail(c, http.StatusBadRequest, "Username is required")
		return
	}

	checkins, err := cc.checkinService.ListCheckins(c.Request.Context(), username)
	if err != nil {
		utils.HandleActionError(c, err)
		return
	}

	c.JSON(http.StatusOK, checkins)
}
