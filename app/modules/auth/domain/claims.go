package authdomain

import "time"

// Claims represents the identity carried by an access token.
type Claims struct {
	UserID    int64
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
