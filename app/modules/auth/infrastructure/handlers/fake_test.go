package authhandlers

import (
	"context"

	authservice "github.com/Black-And-White-Club/budtender-trivia/app/modules/auth/application"
	authdomain "github.com/Black-And-White-Club/budtender-trivia/app/modules/auth/domain"
	authjwt "github.com/Black-And-White-Club/budtender-trivia/app/modules/auth/infrastructure/jwt"
)

type FakeService struct {
	SignupFunc       func(ctx context.Context, req authservice.SignupRequest) (int64, error)
	SigninFunc       func(ctx context.Context, req authservice.SigninRequest) (authservice.SigninResponse, error)
	AuthenticateFunc func(ctx context.Context, token string) (*authdomain.Claims, error)
	HasRoleFunc      func(ctx context.Context, userID int64, role authdomain.Role) (bool, error)
}

func (f *FakeService) Signup(ctx context.Context, req authservice.SignupRequest) (int64, error) {
	if f.SignupFunc != nil {
		return f.SignupFunc(ctx, req)
	}
	return 1, nil
}

func (f *FakeService) Signin(ctx context.Context, req authservice.SigninRequest) (authservice.SigninResponse, error) {
	if f.SigninFunc != nil {
		return f.SigninFunc(ctx, req)
	}
	return authservice.SigninResponse{}, nil
}

func (f *FakeService) Authenticate(ctx context.Context, token string) (*authdomain.Claims, error) {
	if f.AuthenticateFunc != nil {
		return f.AuthenticateFunc(ctx, token)
	}
	return nil, authjwt.ErrInvalidToken
}

func (f *FakeService) HasRole(ctx context.Context, userID int64, role authdomain.Role) (bool, error) {
	if f.HasRoleFunc != nil {
		return f.HasRoleFunc(ctx, userID, role)
	}
	return false, nil
}

var _ authservice.Service = (*FakeService)(nil)
