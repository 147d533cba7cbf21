package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"shudao/internal/models/request_models"
	"shudao/internal/services"
	"shudao/pkg/utils"
)

type FavoriteController struct {
	favoriteService services.FavoriteServiceInterface
}

func NewFavoriteController(favoriteService services.FavoriteServiceInterface) *FavoriteController {
	return &FavoriteController{
		favoriteService: favoriteService,
	}
}

// CreateFavorite godoc
// @Summary Bookmark a scenic spot
// @Tags Actions
// @Accept json
// @Produce json
// @Param request body request_models.CreateFavoriteRequest true "Favorite payload"
// @Success 200
// @Failure 400
// @Failure 404
// @Router /api/actions/favorites [post]
func (fc *FavoriteController) CreateFavorite(c *gin.Context) {
	var req request_models.CreateFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondDetail(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	favorite, err := fc.favoriteService.CreateFavorite(c.Request.Context(), req)
	if err != nil {
		utils.HandleActionError(c, err)
		return
	}

	c.JSON(http.StatusOK, favorite)
}

func (fc *FavoriteController) DeleteFavorite(c *gin.Context) {
	scenicID, err := strconv.Atoi(c.Param("scenic_id"))
	if err != nil {
		utils.RespondDetail(c, http.StatusBadRequest, "Invalid scenic ID")
		return
	}
	username := c.Query("username")
	if username == "" {
		utils.RespondDetail(c, http.StatusBadRequest, "Username is required")
		return
	}

	if err := fc.favoriteService.DeleteFavorite(c.Request.Context(), username, scenicID); err != nil {
		utils.HandleActionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Favorite removed"})
}

func (fc *FavoriteController) ListFavorites(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		utils.RespondDetail(c, http.StatusBadRequest, "Username is required")
		return
	}

	favorites, err := fc.favoriteService.ListFavorites(c.Request.Context(), username)
	if err != nil {
		utils.HandleActionError(c, err)
		return
	}

	c.JSON(http.StatusOK, favorites)
}

// CheckFavorite reports whether a user has favorited a spot. Unknown
// usernames read as not favorited, never as an error.
func (fc *FavoriteController) CheckFavorite(c *gin.Context) {
	scenicID, err := strconv.Atoi(c.Param("scenic_id"))
	if err != nil {
		utils.RespondDetail(c, http.StatusBadRequest, "Invalid scenic ID")
		return
	}
	username := c.Query("username")

	favorited, err := fc.favoriteService.IsFavorited(c.Request.Context(), username, scenicID)
	if err != nil {
		utils.HandleActionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_favorited": favorited})
}
