package userdb

import "errors"

var (
	// ErrNotFound indicates the requested user does not exist.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicateUsername is returned when the username unique constraint fires.
	ErrDuplicateUsername = errors.New("username already in use")

	// ErrDuplicateEmail is returned when the email unique constraint fires.
	ErrDuplicateEmail = errors.New("email already in use")

	// ErrNoRowsAffected indicates an UPDATE or DELETE matched nothing.
	ErrNoRowsAffected = errors.New("no rows affected")
)
