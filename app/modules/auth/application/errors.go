package authservice

import "errors"

var (
	ErrMissingFields      = errors.New("username, email and password are required")
	ErrInviteRequired     = errors.New("invite code is required")
	ErrInvalidInvite      = errors.New("invite code is invalid, used up or unknown")
	ErrUsernameTaken      = errors.New("username already in use")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidRoles       = errors.New("one or more roles are invalid")
	ErrDefaultRoleMissing = errors.New("default role is not seeded")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
