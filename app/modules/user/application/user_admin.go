package userservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	userdb "github.com/Black-And-White-Club/budtender-trivia/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability/attr"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/operation"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/results"
	"github.com/uptrace/bun"
)

// ListUsers returns every account ordered by username.
func (s *UserService) ListUsers(ctx context.Context) ([]Profile, error) {
	result, err := operation.Run(s.run, ctx, "ListUsers", "all", operation.ReadSnapshot,
		func(ctx context.Context, db bun.IDB) (results.OperationResult[[]Profile, error], error) {
			users, err := s.repo.List(ctx, db)
			if err != nil {
				return results.OperationResult[[]Profile, error]{}, fmt.Errorf("failed to list users: %w", err)
			}

			ids := make([]int64, 0, len(users))
			for _, u := range users {
				ids = append(ids, u.ID)
			}
			roles, err := s.repo.RoleNames(ctx, db, ids)
			if err != nil {
				return results.OperationResult[[]Profile, error]{}, fmt.Errorf("failed to load roles: %w", err)
			}

			profiles := make([]Profile, 0, len(users))
			for i := range users {
				profiles = append(profiles, toProfile(&users[i], roles[users[i].ID]))
			}
			return results.SuccessResult[[]Profile, error](profiles), nil
		})
	return operation.Collapse(result, err)
}

// DeleteUser removes targetID. Answer events, statistics and role links go
// with it through foreign key cascades in the same transaction.
func (s *UserService) DeleteUser(ctx context.Context, actorID, targetID int64) error {
	result, err := operation.Run(s.run, ctx, "DeleteUser", strconv.FormatInt(targetID, 10), nil,
		func(ctx context.Context, db bun.IDB) (results.OperationResult[bool, error], error) {
			if actorID == targetID {
				return results.FailureResult[bool, error](ErrCannotDeleteSelf), nil
			}
			if err := s.repo.Delete(ctx, db, targetID); err != nil {
				if errors.Is(err, userdb.ErrNotFound) {
					return results.FailureResult[bool, error](ErrUserNotFound), nil
				}
				return results.OperationResult[bool, error]{}, fmt.Errorf("failed to delete user: %w", err)
			}
			s.logger.InfoContext(ctx, "User deleted",
				attr.ExtractCorrelationID(ctx),
				attr.UserID(targetID),
				attr.Int64("deleted_by", actorID),
			)
			return results.SuccessResult[bool, error](true), nil
		})
	_, err = operation.Collapse(result, err)
	return err
}

// ListStoreLocations returns the distinct non-empty store locations in use.
func (s *UserService) ListStoreLocations(ctx context.Context) ([]string, error) {
	result, err := operation.Run(s.run, ctx, "ListStoreLocations", "all", nil,
		func(ctx context.Context, db bun.IDB) (results.OperationResult[[]string, error], error) {
			locations, err := s.repo.DistinctStoreLocations(ctx, db)
			if err != nil {
				return results.OperationResult[[]string, error]{}, fmt.Errorf("failed to list locations: %w", err)
			}
			if locations == nil {
				locations = []string{}
			}
			return results.SuccessResult[[]string, error](locations), nil
		})
	return operation.Collapse(result, err)
}

// RolesOf returns the role names held by userID.
func (s *UserService) RolesOf(ctx context.Context, userID int64) ([]string, error) {
	roles, err := s.repo.RoleNames(ctx, nil, []int64{userID})
	if err != nil {
		return nil, fmt.Errorf("failed to load roles: %w", err)
	}
	return roles[userID], nil
}
