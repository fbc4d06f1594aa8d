package userdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Black-And-White-Club/budtender-trivia/app/shared/pgerr"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new user repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) GetByID(ctx context.Context, db bun.IDB, id int64) (*User, error) {
	db = r.resolveDB(db)
	user := new(User)
	err := db.NewSelect().
		Model(user).
		Where("u.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("userdb.GetByID: %w", err)
	}
	return user, nil
}

func (r *Impl) GetByUsername(ctx context.Context, db bun.IDB, username string) (*User, error) {
	db = r.resolveDB(db)
	user := new(User)
	err := db.NewSelect().
		Model(user).
		Where("u.username = ?", username).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("userdb.GetByUsername: %w", err)
	}
	return user, nil
}

func (r *Impl) UsernameTaken(ctx context.Context, db bun.IDB, username string, excludeID int64) (bool, error) {
	db = r.resolveDB(db)
	exists, err := db.NewSelect().
		Model((*User)(nil)).
		Where("u.username = ?", username).
		Where("u.id <> ?", excludeID).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("userdb.UsernameTaken: %w", err)
	}
	return exists, nil
}

func (r *Impl) EmailTaken(ctx context.Context, db bun.IDB, email string, excludeID int64) (bool, error) {
	db = r.resolveDB(db)
	exists, err := db.NewSelect().
		Model((*User)(nil)).
		Where("u.email = ?", email).
		Where("u.id <> ?", excludeID).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("userdb.EmailTaken: %w", err)
	}
	return exists, nil
}

func (r *Impl) Create(ctx context.Context, db bun.IDB, user *User) error {
	db = r.resolveDB(db)
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	_, err := db.NewInsert().
		Model(user).
		Returning("id").
		Exec(ctx)
	if err != nil {
		return mapUniqueViolation("userdb.Create", err)
	}
	return nil
}

func (r *Impl) UpdateProfile(ctx context.Context, db bun.IDB, user *User) error {
	db = r.resolveDB(db)
	user.UpdatedAt = time.Now().UTC()
	res, err := db.NewUpdate().
		Model(user).
		Column("username", "email", "store_location", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return mapUniqueViolation("userdb.UpdateProfile", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("userdb.UpdateProfile: rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Impl) Delete(ctx context.Context, db bun.IDB, id int64) error {
	db = r.resolveDB(db)
	res, err := db.NewDelete().
		Model((*User)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("userdb.Delete: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("userdb.Delete: rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Impl) List(ctx context.Context, db bun.IDB) ([]User, error) {
	db = r.resolveDB(db)
	var users []User
	err := db.NewSelect().
		Model(&users).
		OrderExpr("u.username ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("userdb.List: %w", err)
	}
	return users, nil
}

func (r *Impl) DistinctStoreLocations(ctx context.Context, db bun.IDB) ([]string, error) {
	db = r.resolveDB(db)
	var locations []string
	err := db.NewSelect().
		Model((*User)(nil)).
		Distinct().
		Column("store_location").
		Where("store_location IS NOT NULL").
		Where("store_location <> ''").
		OrderExpr("store_location ASC").
		Scan(ctx, &locations)
	if err != nil {
		return nil, fmt.Errorf("userdb.DistinctStoreLocations: %w", err)
	}
	return locations, nil
}

func (r *Impl) FindRolesByName(ctx context.Context, db bun.IDB, names []string) ([]Role, error) {
	db = r.resolveDB(db)
	if len(names) == 0 {
		return nil, nil
	}
	var roles []Role
	err := db.NewSelect().
		Model(&roles).
		Where("r.name IN (?)", bun.In(names)).
		OrderExpr("r.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("userdb.FindRolesByName: %w", err)
	}
	return roles, nil
}

func (r *Impl) SetRoles(ctx context.Context, db bun.IDB, userID int64, roleIDs []int64) error {
	db = r.resolveDB(db)
	if _, err := db.NewDelete().
		Model((*UserRole)(nil)).
		Where("user_id = ?", userID).
		Exec(ctx); err != nil {
		return fmt.Errorf("userdb.SetRoles: clear: %w", err)
	}
	if len(roleIDs) == 0 {
		return nil
	}

	links := make([]UserRole, 0, len(roleIDs))
	for _, id := range roleIDs {
		links = append(links, UserRole{UserID: userID, RoleID: id})
	}
	if _, err := db.NewInsert().
		Model(&links).
		On("CONFLICT (user_id, role_id) DO NOTHING").
		Exec(ctx); err != nil {
		return fmt.Errorf("userdb.SetRoles: insert: %w", err)
	}
	return nil
}

func (r *Impl) RoleNames(ctx context.Context, db bun.IDB, userIDs []int64) (map[int64][]string, error) {
	db = r.resolveDB(db)
	out := make(map[int64][]string, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		UserID int64  `bun:"user_id"`
		Name   string `bun:"name"`
	}
	err := db.NewSelect().
		TableExpr("user_roles AS ur").
		ColumnExpr("ur.user_id, r.name").
		Join("JOIN roles AS r ON r.id = ur.role_id").
		Where("ur.user_id IN (?)", bun.In(userIDs)).
		OrderExpr("ur.user_id ASC, r.id ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("userdb.RoleNames: %w", err)
	}
	for _, row := range rows {
		out[row.UserID] = append(out[row.UserID], row.Name)
	}
	return out, nil
}

// mapUniqueViolation turns the username/email unique constraints into
// sentinel errors.
func mapUniqueViolation(op string, err error) error {
	if pgerr.IsUniqueViolation(err) {
		constraint := pgerr.Constraint(err)
		switch {
		case strings.Contains(constraint, "username"):
			return ErrDuplicateUsername
		case strings.Contains(constraint, "email"):
			return ErrDuplicateEmail
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
