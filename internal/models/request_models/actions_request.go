package request_models

type CreateCheckinRequest struct {
	Username string  `json:"username" binding:"required"`
	ScenicID int     `json:"scenic_id" binding:"required"`
	Note     *string `json:"note"`
	ImageURL *string `json:"image_url"`
}

type CreateFavoriteRequest struct {
	Username string `json:"username" binding:"required"`
	ScenicID int    `json:"scenic_id" binding:"required"`
}
