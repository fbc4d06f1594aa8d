package authjwt

import (
	"time"

	authdomain "github.com/Black-And-White-Club/budtender-trivia/app/modules/auth/domain"
)

// Provider defines the interface for access token operations.
type Provider interface {
	// GenerateToken creates a signed token identifying userID, valid for ttl.
	GenerateToken(userID int64, ttl time.Duration) (string, error)

	// ValidateToken validates a token and returns its claims if valid.
	ValidateToken(tokenString string) (*authdomain.Claims, error)
}
