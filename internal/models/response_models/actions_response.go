package response_models

// ScenicName is resolved by a left join at read time and stays null when
// the referenced scenic row no longer exists.

type CheckinResponse struct {
	ID          int     `json:"id"`
	UserID      int     `json:"user_id"`
	ScenicID    int     `json:"scenic_id"`
	ScenicName  *string `json:"scenic_name"`
	Note        *string `json:"note"`
	ImageURL    *string `json:"image_url"`
	CheckinTime string  `json:"checkin_time"`
}

type FavoriteResponse struct {
	ID         int     `json:"id"`
	UserID     int     `json:"user_id"`
	ScenicID   int     `json:"scenic_id"`
	ScenicName *string `json:"scenic_name"`
	CreateTime string  `json:"create_time"`
}
