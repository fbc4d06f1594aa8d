package userdb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the contract for user persistence.
// Every method accepts an optional bun.IDB so callers can run it inside a
// transaction; nil falls back to the repository's own connection.
//
// Error semantics:
//   - ErrNotFound: no user matches
//   - ErrDuplicateUsername / ErrDuplicateEmail: unique constraint fired
//   - Other errors: infrastructure failures
type Repository interface {
	// GetByID retrieves a user by primary key.
	GetByID(ctx context.Context, db bun.IDB, id int64) (*User, error)

	// GetByUsername retrieves a user by exact username.
	GetByUsername(ctx context.Context, db bun.IDB, username string) (*User, error)

	// UsernameTaken reports whether another user (not excludeID) owns username.
	UsernameTaken(ctx context.Context, db bun.IDB, username string, excludeID int64) (bool, error)

	// EmailTaken reports whether another user (not excludeID) owns email.
	EmailTaken(ctx context.Context, db bun.IDB, email string, excludeID int64) (bool, error)

	// Create inserts a user and fills its ID and timestamps.
	Create(ctx context.Context, db bun.IDB, user *User) error

	// UpdateProfile writes username, email and store location.
	UpdateProfile(ctx context.Context, db bun.IDB, user *User) error

	// Delete removes a user. Scores, statistics and role links cascade.
	Delete(ctx context.Context, db bun.IDB, id int64) error

	// List returns every user ordered by username.
	List(ctx context.Context, db bun.IDB) ([]User, error)

	// DistinctStoreLocations returns the non-empty store locations in use, ascending.
	DistinctStoreLocations(ctx context.Context, db bun.IDB) ([]string, error)

	// FindRolesByName returns the roles whose names are in names.
	FindRolesByName(ctx context.Context, db bun.IDB, names []string) ([]Role, error)

	// SetRoles replaces the role links of a user.
	SetRoles(ctx context.Context, db bun.IDB, userID int64, roleIDs []int64) error

	// RoleNames returns role names keyed by user id for the given users.
	RoleNames(ctx context.Context, db bun.IDB, userIDs []int64) (map[int64][]string, error)
}
