package userservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	userdb "github.com/Black-And-White-Club/budtender-trivia/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability/attr"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/operation"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/results"
	"github.com/uptrace/bun"
)

// GetCurrentUser returns the profile of userID.
func (s *UserService) GetCurrentUser(ctx context.Context, userID int64) (Profile, error) {
	result, err := operation.Run(s.run, ctx, "GetCurrentUser", strconv.FormatInt(userID, 10), nil,
		func(ctx context.Context, db bun.IDB) (results.OperationResult[Profile, error], error) {
			return s.loadProfile(ctx, db, userID)
		})
	return operation.Collapse(result, err)
}

func (s *UserService) loadProfile(ctx context.Context, db bun.IDB, userID int64) (results.OperationResult[Profile, error], error) {
	user, err := s.repo.GetByID(ctx, db, userID)
	if err != nil {
		if errors.Is(err, userdb.ErrNotFound) {
			return results.FailureResult[Profile, error](ErrUserNotFound), nil
		}
		return results.OperationResult[Profile, error]{}, fmt.Errorf("failed to load user: %w", err)
	}
	roles, err := s.repo.RoleNames(ctx, db, []int64{userID})
	if err != nil {
		return results.OperationResult[Profile, error]{}, fmt.Errorf("failed to load roles: %w", err)
	}
	return results.SuccessResult[Profile, error](toProfile(user, roles[userID])), nil
}

// UpdateCurrentUser applies a profile edit. Username and email uniqueness is
// checked against every other account.
func (s *UserService) UpdateCurrentUser(ctx context.Context, userID int64, update ProfileUpdate) (UpdateResult, error) {
	result, err := operation.Run(s.run, ctx, "UpdateCurrentUser", strconv.FormatInt(userID, 10), nil,
		func(ctx context.Context, db bun.IDB) (results.OperationResult[UpdateResult, error], error) {
			return s.updateProfileLogic(ctx, db, userID, update)
		})
	return operation.Collapse(result, err)
}

func (s *UserService) updateProfileLogic(ctx context.Context, db bun.IDB, userID int64, update ProfileUpdate) (results.OperationResult[UpdateResult, error], error) {
	fail := func(e error) (results.OperationResult[UpdateResult, error], error) {
		return results.FailureResult[UpdateResult, error](e), nil
	}

	user, err := s.repo.GetByID(ctx, db, userID)
	if err != nil {
		if errors.Is(err, userdb.ErrNotFound) {
			return fail(ErrUserNotFound)
		}
		return results.OperationResult[UpdateResult, error]{}, fmt.Errorf("failed to load user: %w", err)
	}

	changed := false

	if update.Username != nil {
		username := strings.TrimSpace(*update.Username)
		if username == "" {
			return fail(ErrInvalidUsername)
		}
		if username != user.Username {
			taken, err := s.repo.UsernameTaken(ctx, db, username, userID)
			if err != nil {
				return results.OperationResult[UpdateResult, error]{}, fmt.Errorf("failed to check username: %w", err)
			}
			if taken {
				return fail(ErrUsernameTaken)
			}
			user.Username = username
			changed = true
		}
	}

	if update.Email != nil {
		email := strings.TrimSpace(*update.Email)
		if email == "" {
			return fail(ErrInvalidEmail)
		}
		if email != user.Email {
			taken, err := s.repo.EmailTaken(ctx, db, email, userID)
			if err != nil {
				return results.OperationResult[UpdateResult, error]{}, fmt.Errorf("failed to check email: %w", err)
			}
			if taken {
				return fail(ErrEmailTaken)
			}
			user.Email = email
			changed = true
		}
	}

	if update.StoreLocation != nil {
		var next *string
		if loc := strings.TrimSpace(*update.StoreLocation); loc != "" {
			next = &loc
		}
		if !sameLocation(user.StoreLocation, next) {
			user.StoreLocation = next
			changed = true
		}
	}

	if changed {
		if err := s.repo.UpdateProfile(ctx, db, user); err != nil {
			switch {
			case errors.Is(err, userdb.ErrDuplicateUsername):
				return fail(ErrUsernameTaken)
			case errors.Is(err, userdb.ErrDuplicateEmail):
				return fail(ErrEmailTaken)
			case errors.Is(err, userdb.ErrNotFound):
				return fail(ErrUserNotFound)
			}
			return results.OperationResult[UpdateResult, error]{}, fmt.Errorf("failed to update user: %w", err)
		}
		s.logger.InfoContext(ctx, "Profile updated",
			attr.ExtractCorrelationID(ctx),
			attr.UserID(userID),
		)
	}

	roles, err := s.repo.RoleNames(ctx, db, []int64{userID})
	if err != nil {
		return results.OperationResult[UpdateResult, error]{}, fmt.Errorf("failed to load roles: %w", err)
	}

	return results.SuccessResult[UpdateResult, error](UpdateResult{
		Changed: changed,
		Profile: toProfile(user, roles[userID]),
	}), nil
}

func sameLocation(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
