package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"shudao/internal/models/request_models"
	"shudao/internal/services"
	"shudao/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
}

func NewAuthController(authService services.AuthServiceInterface) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Create a user account with a unique username
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.RegisterRequest true "Registration payload"
// @Success 200
// @Failure 400
// @Router /api/auth/register [post]
func (a *AuthController) Register(c *gin.Context) {
	var req request_models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondDetail(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := a.authService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleActionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Registration successful",
		"data":    user,
	})
}

// Login godoc
// @Summary Log in
// @Description Verify credentials; no token or session is issued
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200
// @Failure 401
// @Router /api/auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondDetail(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := a.authService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleActionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"data":    user,
	})
}
