package response_models

import "shudao/internal/models/db_models"

// RouteResponse carries the decoded point sequence; Distance is
// recomputed from the points on every read.
type RouteResponse struct {
	ID          int                    `json:"id"`
	UserID      int                    `json:"user_id"`
	Name        string                 `json:"name"`
	Points      []db_models.RoutePoint `json:"points"`
	Description *string                `json:"description"`
	CreateTime  string                 `json:"create_time"`
	Distance    float64                `json:"distance"`
}

// RouteSummary is the lightweight listing shape for profile pages.
type RouteSummary struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Distance    float64 `json:"distance"`
	PointsCount int     `json:"points_count"`
	CreateTime  string  `json:"create_time"`
}
