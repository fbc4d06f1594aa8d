package authservice

import (
	"context"
	"errors"
	"fmt"

	authdomain "github.com/Black-And-White-Club/budtender-trivia/app/modules/auth/domain"
	"github.com/Black-And-White-Club/budtender-trivia/app/modules/auth/infrastructure/password"
	userdb "github.com/Black-And-White-Club/budtender-trivia/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/operation"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/results"
	"github.com/uptrace/bun"
)

// Signin verifies credentials and issues an access token. Unknown users and
// wrong passwords fail identically.
func (s *AuthService) Signin(ctx context.Context, req SigninRequest) (SigninResponse, error) {
	result, err := operation.WithTelemetry(s.run, ctx, "Signin", req.Username,
		func(ctx context.Context) (results.OperationResult[SigninResponse, error], error) {
			return s.signinLogic(ctx, nil, req)
		})
	return operation.Collapse(result, err)
}

func (s *AuthService) signinLogic(ctx context.Context, db bun.IDB, req SigninRequest) (results.OperationResult[SigninResponse, error], error) {
	if req.Username == "" || req.Password == "" {
		return results.FailureResult[SigninResponse, error](ErrInvalidCredentials), nil
	}

	user, err := s.users.GetByUsername(ctx, db, req.Username)
	if err != nil {
		if errors.Is(err, userdb.ErrNotFound) {
			return results.FailureResult[SigninResponse, error](ErrInvalidCredentials), nil
		}
		return results.OperationResult[SigninResponse, error]{}, fmt.Errorf("failed to load user: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return results.FailureResult[SigninResponse, error](ErrInvalidCredentials), nil
		}
		return results.OperationResult[SigninResponse, error]{}, err
	}

	roles, err := s.users.RoleNames(ctx, db, []int64{user.ID})
	if err != nil {
		return results.OperationResult[SigninResponse, error]{}, fmt.Errorf("failed to load roles: %w", err)
	}

	token, err := s.tokens.GenerateToken(user.ID, s.config.TokenTTL)
	if err != nil {
		return results.OperationResult[SigninResponse, error]{}, err
	}

	return results.SuccessResult[SigninResponse, error](SigninResponse{
		ID:            user.ID,
		Username:      user.Username,
		Email:         user.Email,
		Roles:         authdomain.Authorities(roles[user.ID]),
		AccessToken:   token,
		StoreLocation: user.StoreLocation,
	}), nil
}
