package user

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameExists      = errors.New("username already taken")
	ErrInvalidPasswordHash = errors.New("password hash is empty")
)
