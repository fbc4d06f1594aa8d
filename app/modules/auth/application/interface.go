package authservice

import (
	"context"
	"time"

	authdomain "github.com/Black-And-White-Club/budtender-trivia/app/modules/auth/domain"
)

// Config holds the signup and token settings.
type Config struct {
	InviteRequired bool
	TokenTTL       time.Duration
}

// SignupRequest is the payload of an account registration.
type SignupRequest struct {
	Username      string   `json:"username"`
	Email         string   `json:"email"`
	Password      string   `json:"password"`
	StoreLocation string   `json:"storeLocation"`
	InviteCode    string   `json:"inviteCode"`
	Roles         []string `json:"roles"`
}

// SigninRequest carries login credentials.
type SigninRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SigninResponse is returned on a successful login.
type SigninResponse struct {
	ID            int64    `json:"id"`
	Username      string   `json:"username"`
	Email         string   `json:"email"`
	Roles         []string `json:"roles"`
	AccessToken   string   `json:"accessToken"`
	StoreLocation *string  `json:"storeLocation"`
}

// Service defines authentication and authorization operations.
type Service interface {
	Signup(ctx context.Context, req SignupRequest) (int64, error)
	Signin(ctx context.Context, req SigninRequest) (SigninResponse, error)

	// Authenticate validates an access token.
	Authenticate(ctx context.Context, token string) (*authdomain.Claims, error)

	// HasRole reports whether userID currently holds role.
	HasRole(ctx context.Context, userID int64, role authdomain.Role) (bool, error)
}
