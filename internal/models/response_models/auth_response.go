package response_models

type RegisteredUser struct {
	ID         int    `json:"id"`
	Username   string `json:"username"`
	CreateTime string `json:"create_time"`
}

type LoggedInUser struct {
	ID         int     `json:"id"`
	Username   string  `json:"username"`
	AvatarURL  *string `json:"avatar_url"`
	CreateTime string  `json:"create_time"`
	RoleID     int     `json:"role_id"`
}
