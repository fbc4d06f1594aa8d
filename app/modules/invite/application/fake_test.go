package inviteservice

import (
	"context"

	invitedb "github.com/Black-And-White-Club/budtender-trivia/app/modules/invite/infrastructure/repositories"
	"github.com/uptrace/bun"
)

type FakeInviteRepo struct {
	trace []string

	GetByIDFunc            func(ctx context.Context, db bun.IDB, id int64) (*invitedb.InviteCode, error)
	CreateFunc             func(ctx context.Context, db bun.IDB, invite *invitedb.InviteCode) error
	ListFunc               func(ctx context.Context, db bun.IDB) ([]invitedb.InviteCode, error)
	DeleteFunc             func(ctx context.Context, db bun.IDB, id int64) error
	CodeExistsFunc         func(ctx context.Context, db bun.IDB, code string) (bool, error)
	GetByCodeForUpdateFunc func(ctx context.Context, db bun.IDB, code string) (*invitedb.InviteCode, error)
	IncrementUsesFunc      func(ctx context.Context, db bun.IDB, id int64) error
}

func NewFakeInviteRepo() *FakeInviteRepo {
	return &FakeInviteRepo{trace: []string{}}
}

func (f *FakeInviteRepo) record(step string) { f.trace = append(f.trace, step) }

func (f *FakeInviteRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeInviteRepo) GetByID(ctx context.Context, db bun.IDB, id int64) (*invitedb.InviteCode, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, id)
	}
	return nil, invitedb.ErrNotFound
}

func (f *FakeInviteRepo) Create(ctx context.Context, db bun.IDB, invite *invitedb.InviteCode) error {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, invite)
	}
	return nil
}

func (f *FakeInviteRepo) List(ctx context.Context, db bun.IDB) ([]invitedb.InviteCode, error) {
	f.record("List")
	if f.ListFunc != nil {
		return f.ListFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeInviteRepo) Delete(ctx context.Context, db bun.IDB, id int64) error {
	f.record("Delete")
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, db, id)
	}
	return nil
}

func (f *FakeInviteRepo) CodeExists(ctx context.Context, db bun.IDB, code string) (bool, error) {
	f.record("CodeExists")
	if f.CodeExistsFunc != nil {
		return f.CodeExistsFunc(ctx, db, code)
	}
	return false, nil
}

func (f *FakeInviteRepo) GetByCodeForUpdate(ctx context.Context, db bun.IDB, code string) (*invitedb.InviteCode, error) {
	f.record("GetByCodeForUpdate")
	if f.GetByCodeForUpdateFunc != nil {
		return f.GetByCodeForUpdateFunc(ctx, db, code)
	}
	return nil, invitedb.ErrNotFound
}

func (f *FakeInviteRepo) IncrementUses(ctx context.Context, db bun.IDB, id int64) error {
	f.record("IncrementUses")
	if f.IncrementUsesFunc != nil {
		return f.IncrementUsesFunc(ctx, db, id)
	}
	return nil
}

var _ invitedb.Repository = (*FakeInviteRepo)(nil)
