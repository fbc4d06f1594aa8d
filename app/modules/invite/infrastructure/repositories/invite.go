package invitedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Black-And-White-Club/budtender-trivia/app/shared/pgerr"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new invite code repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) GetByID(ctx context.Context, db bun.IDB, id int64) (*InviteCode, error) {
	db = r.resolveDB(db)
	invite := new(InviteCode)
	err := db.NewSelect().
		Model(invite).
		Where("ic.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("invitedb.GetByID: %w", err)
	}
	return invite, nil
}

func (r *Impl) Create(ctx context.Context, db bun.IDB, invite *InviteCode) error {
	db = r.resolveDB(db)
	now := time.Now().UTC()
	invite.CreatedAt = now
	invite.UpdatedAt = now
	_, err := db.NewInsert().
		Model(invite).
		Returning("id").
		Exec(ctx)
	if err != nil {
		if pgerr.IsUniqueViolation(err) {
			return ErrDuplicateCode
		}
		return fmt.Errorf("invitedb.Create: %w", err)
	}
	return nil
}

func (r *Impl) List(ctx context.Context, db bun.IDB) ([]InviteCode, error) {
	db = r.resolveDB(db)
	var invites []InviteCode
	err := db.NewSelect().
		Model(&invites).
		OrderExpr("ic.created_at DESC, ic.id DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("invitedb.List: %w", err)
	}
	return invites, nil
}

func (r *Impl) Delete(ctx context.Context, db bun.IDB, id int64) error {
	db = r.resolveDB(db)
	res, err := db.NewDelete().
		Model((*InviteCode)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("invitedb.Delete: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("invitedb.Delete: rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Impl) CodeExists(ctx context.Context, db bun.IDB, code string) (bool, error) {
	db = r.resolveDB(db)
	exists, err := db.NewSelect().
		Model((*InviteCode)(nil)).
		Where("ic.code = ?", code).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("invitedb.CodeExists: %w", err)
	}
	return exists, nil
}

func (r *Impl) GetByCodeForUpdate(ctx context.Context, db bun.IDB, code string) (*InviteCode, error) {
	db = r.resolveDB(db)
	invite := new(InviteCode)
	err := db.NewSelect().
		Model(invite).
		Where("ic.code = ?", code).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("invitedb.GetByCodeForUpdate: %w", err)
	}
	return invite, nil
}

func (r *Impl) IncrementUses(ctx context.Context, db bun.IDB, id int64) error {
	db = r.resolveDB(db)
	res, err := db.NewUpdate().
		Model((*InviteCode)(nil)).
		Set("uses_count = uses_count + 1").
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("invitedb.IncrementUses: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("invitedb.IncrementUses: rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
