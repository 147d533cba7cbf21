package utils

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPoemNotFound       = errors.New("poem not found")
	ErrAlreadyFavorited   = errors.New("scenic spot already favorited")
	ErrFavoriteNotFound   = errors.New("favorite record not found")
	ErrRouteNotFound      = errors.New("route not found")
	ErrUsernameRequired   = errors.New("username is required")
	ErrNoFieldsToUpdate   = errors.New("no fields to update")
	ErrDatabaseError      = errors.New("database error")
)
