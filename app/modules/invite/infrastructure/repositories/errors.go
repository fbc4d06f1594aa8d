package invitedb

import "errors"

var (
	// ErrNotFound indicates no invite code matched.
	ErrNotFound = errors.New("invite code not found")

	// ErrDuplicateCode is returned when the code unique constraint fires.
	ErrDuplicateCode = errors.New("invite code already exists")
)
