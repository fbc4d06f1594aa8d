package authservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	authdomain "github.com/Black-And-White-Club/budtender-trivia/app/modules/auth/domain"
	invitedb "github.com/Black-And-White-Club/budtender-trivia/app/modules/invite/infrastructure/repositories"
	userdb "github.com/Black-And-White-Club/budtender-trivia/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability/attr"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/operation"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/results"
	"github.com/uptrace/bun"
)

// Signup registers an account and returns its id.
//
// Every check runs before the first write. The invite row stays locked from
// validation until its use count is incremented, so two signups cannot both
// spend the last use of a code.
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (int64, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	req.InviteCode = strings.TrimSpace(req.InviteCode)

	if req.Username == "" || req.Email == "" || req.Password == "" {
		return 0, ErrMissingFields
	}
	if s.config.InviteRequired && req.InviteCode == "" {
		return 0, ErrInviteRequired
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return 0, err
	}

	result, err := operation.Run(s.run, ctx, "Signup", req.Username, nil,
		func(ctx context.Context, db bun.IDB) (results.OperationResult[int64, error], error) {
			return s.signupLogic(ctx, db, req, hash)
		})
	return operation.Collapse(result, err)
}

func (s *AuthService) signupLogic(ctx context.Context, db bun.IDB, req SignupRequest, hash string) (results.OperationResult[int64, error], error) {
	fail := func(e error) (results.OperationResult[int64, error], error) {
		return results.FailureResult[int64, error](e), nil
	}

	var invite *invitedb.InviteCode
	if s.config.InviteRequired {
		found, err := s.invites.GetByCodeForUpdate(ctx, db, req.InviteCode)
		if err != nil {
			if errors.Is(err, invitedb.ErrNotFound) {
				return fail(ErrInvalidInvite)
			}
			return results.OperationResult[int64, error]{}, fmt.Errorf("failed to load invite: %w", err)
		}
		if !found.Usable() {
			return fail(ErrInvalidInvite)
		}
		invite = found
	}

	taken, err := s.users.UsernameTaken(ctx, db, req.Username, 0)
	if err != nil {
		return results.OperationResult[int64, error]{}, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return fail(ErrUsernameTaken)
	}
	taken, err = s.users.EmailTaken(ctx, db, req.Email, 0)
	if err != nil {
		return results.OperationResult[int64, error]{}, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return fail(ErrEmailTaken)
	}

	roleIDs, err := s.resolveRoles(ctx, db, req.Roles)
	if err != nil {
		if errors.Is(err, ErrInvalidRoles) {
			return fail(err)
		}
		return results.OperationResult[int64, error]{}, err
	}

	user := &userdb.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if loc := strings.TrimSpace(req.StoreLocation); loc != "" {
		user.StoreLocation = &loc
	} else if invite != nil && invite.StoreLocation != nil {
		loc := *invite.StoreLocation
		user.StoreLocation = &loc
	}
	if invite != nil {
		code := invite.Code
		user.InviteCodeUsed = &code
	}

	// From here on a failure must abort the transaction, so conflicts are
	// returned as errors rather than failure results.
	if err := s.users.Create(ctx, db, user); err != nil {
		switch {
		case errors.Is(err, userdb.ErrDuplicateUsername):
			return results.OperationResult[int64, error]{}, ErrUsernameTaken
		case errors.Is(err, userdb.ErrDuplicateEmail):
			return results.OperationResult[int64, error]{}, ErrEmailTaken
		}
		return results.OperationResult[int64, error]{}, fmt.Errorf("failed to create user: %w", err)
	}

	if invite != nil {
		if err := s.invites.IncrementUses(ctx, db, invite.ID); err != nil {
			return results.OperationResult[int64, error]{}, fmt.Errorf("failed to spend invite: %w", err)
		}
	}

	if err := s.users.SetRoles(ctx, db, user.ID, roleIDs); err != nil {
		return results.OperationResult[int64, error]{}, fmt.Errorf("failed to assign roles: %w", err)
	}

	s.logger.InfoContext(ctx, "User registered",
		attr.ExtractCorrelationID(ctx),
		attr.UserID(user.ID),
		attr.String("username", user.Username),
		attr.Bool("invite_used", invite != nil),
	)
	return results.SuccessResult[int64, error](user.ID), nil
}

// resolveRoles maps requested role names to ids. No names means the default
// role. Unknown names yield ErrInvalidRoles.
func (s *AuthService) resolveRoles(ctx context.Context, db bun.IDB, requested []string) ([]int64, error) {
	names := make([]string, 0, len(requested))
	seen := make(map[string]struct{}, len(requested))
	for _, name := range requested {
		name = strings.ToLower(strings.TrimSpace(name))
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		if !authdomain.Role(name).IsValid() {
			return nil, ErrInvalidRoles
		}
		names = append(names, name)
	}

	defaulted := false
	if len(names) == 0 {
		names = []string{string(authdomain.DefaultRole)}
		defaulted = true
	}

	roles, err := s.users.FindRolesByName(ctx, db, names)
	if err != nil {
		return nil, fmt.Errorf("failed to load roles: %w", err)
	}
	if len(roles) != len(names) {
		if defaulted {
			return nil, ErrDefaultRoleMissing
		}
		return nil, ErrInvalidRoles
	}

	ids := make([]int64, 0, len(roles))
	for _, r := range roles {
		ids = append(ids, r.ID)
	}
	return ids, nil
}
