package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// The API speaks two response dialects the frontend already depends on.
// The auth/actions group signals failure through HTTP
// status codes with a {"detail": ...} body, while the datasets, filters
// and routes groups always answer 200 and carry a success flag in the
// body. Clients depend on both shapes, so the helpers stay separate and
// are never unified.

type ListResponse struct {
	Success bool        `json:"success"`
	Count   int         `json:"count"`
	Data    interface{} `json:"data"`
}

type ItemResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// RespondList answers in the always-200 dialect with a counted data array.
func RespondList(c *gin.Context, data interface{}, count int) {
	c.JSON(http.StatusOK, ListResponse{Success: true, Count: count, Data: data})
}

// RespondItem answers in the always-200 dialect with a single record.
func RespondItem(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, ItemResponse{Success: true, Data: data})
}

// RespondFlagError reports a failure inside the always-200 dialect.
func RespondFlagError(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": false, "error": message})
}

// RespondFlagListError is RespondFlagError for list endpoints, which also
// carry an empty data array on failure.
func RespondFlagListError(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": false, "error": message, "data": []interface{}{}})
}

// RespondFlagMessage confirms a mutation inside the always-200 dialect.
func RespondFlagMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

// RespondDetail answers in the status-code dialect.
func RespondDetail(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"detail": message})
}

// HandleActionError maps service errors to the status-code dialect used
// by the auth and actions endpoint groups.
func HandleActionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		RespondDetail(c, http.StatusNotFound, "User not found")
	case errors.Is(err, ErrUsernameTaken):
		RespondDetail(c, http.StatusBadRequest, "Username already exists")
	case errors.Is(err, ErrInvalidCredentials):
		RespondDetail(c, http.StatusUnauthorized, "Invalid username or password")
	case errors.Is(err, ErrAlreadyFavorited):
		RespondDetail(c, http.StatusBadRequest, "Scenic spot already favorited")
	case errors.Is(err, ErrFavoriteNotFound):
		RespondDetail(c, http.StatusNotFound, "Favorite record not found")
	default:
		RespondDetail(c, http.StatusInternalServerError, "Internal server error")
	}
}
