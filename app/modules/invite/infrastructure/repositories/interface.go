package invitedb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the contract for invite code persistence.
type Repository interface {
	GetByID(ctx context.Context, db bun.IDB, id int64) (*InviteCode, error)
	Create(ctx context.Context, db bun.IDB, invite *InviteCode) error
	List(ctx context.Context, db bun.IDB) ([]InviteCode, error)
	Delete(ctx context.Context, db bun.IDB, id int64) error
	CodeExists(ctx context.Context, db bun.IDB, code string) (bool, error)

	// GetByCodeForUpdate loads a code and locks its row until the surrounding
	// transaction ends. Outside a transaction the lock is released immediately.
	GetByCodeForUpdate(ctx context.Context, db bun.IDB, code string) (*InviteCode, error)

	// IncrementUses adds one to uses_count.
	IncrementUses(ctx context.Context, db bun.IDB, id int64) error
}
