package userservice

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUsernameTaken    = errors.New("username already in use")
	ErrEmailTaken       = errors.New("email already in use")
	ErrCannotDeleteSelf = errors.New("cannot delete own account")
	ErrInvalidUsername  = errors.New("username cannot be empty")
	ErrInvalidEmail     = errors.New("email cannot be empty")
)
