package request_models

import "shudao/internal/models/db_models"

type CreateRouteRequest struct {
	Name        string                 `json:"name" binding:"required"`
	Description *string                `json:"description"`
	Points      []db_models.RoutePoint `json:"points" binding:"required"`
}

// UpdateRouteRequest carries a partial update: only non-nil fields are
// written. Supplying none of them is an error, not a silent success.
type UpdateRouteRequest struct {
	Name        *string                 `json:"name"`
	Description *string                 `json:"description"`
	Points      *[]db_models.RoutePoint `json:"points"`
}
