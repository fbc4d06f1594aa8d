package authjwt

import "errors"

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidSignature = errors.New("invalid token signature")

	// ErrInvalidSubject is returned when the subject is not a positive user id.
	// It wraps ErrInvalidToken so callers that only check that still match.
	ErrInvalidSubject = errors.Join(ErrInvalidToken, errors.New("subject is not a user id"))

	ErrMissingSecret = errors.New("jwt secret is required")
)
