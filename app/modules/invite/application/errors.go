package inviteservice

import "errors"

var (
	ErrInvalidMaxUses       = errors.New("maxUses must be a positive integer")
	ErrInviteNotFound       = errors.New("invite code not found")
	ErrCodeGenerationFailed = errors.New("failed to generate a unique invite code")
)
