package userservice

import (
	"context"

	userdb "github.com/Black-And-White-Club/budtender-trivia/app/modules/user/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake User Repo
// ------------------------

type FakeUserRepo struct {
	trace []string

	GetByIDFunc                func(ctx context.Context, db bun.IDB, id int64) (*userdb.User, error)
	GetByUsernameFunc          func(ctx context.Context, db bun.IDB, username string) (*userdb.User, error)
	UsernameTakenFunc          func(ctx context.Context, db bun.IDB, username string, excludeID int64) (bool, error)
	EmailTakenFunc             func(ctx context.Context, db bun.IDB, email string, excludeID int64) (bool, error)
	CreateFunc                 func(ctx context.Context, db bun.IDB, user *userdb.User) error
	UpdateProfileFunc          func(ctx context.Context, db bun.IDB, user *userdb.User) error
	DeleteFunc                 func(ctx context.Context, db bun.IDB, id int64) error
	ListFunc                   func(ctx context.Context, db bun.IDB) ([]userdb.User, error)
	DistinctStoreLocationsFunc func(ctx context.Context, db bun.IDB) ([]string, error)
	FindRolesByNameFunc        func(ctx context.Context, db bun.IDB, names []string) ([]userdb.Role, error)
	SetRolesFunc               func(ctx context.Context, db bun.IDB, userID int64, roleIDs []int64) error
	RoleNamesFunc              func(ctx context.Context, db bun.IDB, userIDs []int64) (map[int64][]string, error)
}

func NewFakeUserRepo() *FakeUserRepo {
	return &FakeUserRepo{trace: []string{}}
}

func (f *FakeUserRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeUserRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeUserRepo) GetByID(ctx context.Context, db bun.IDB, id int64) (*userdb.User, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, id)
	}
	return nil, userdb.ErrNotFound
}

func (f *FakeUserRepo) GetByUsername(ctx context.Context, db bun.IDB, username string) (*userdb.User, error) {
	f.record("GetByUsername")
	if f.GetByUsernameFunc != nil {
		return f.GetByUsernameFunc(ctx, db, username)
	}
	return nil, userdb.ErrNotFound
}

func (f *FakeUserRepo) UsernameTaken(ctx context.Context, db bun.IDB, username string, excludeID int64) (bool, error) {
	f.record("UsernameTaken")
	if f.UsernameTakenFunc != nil {
		return f.UsernameTakenFunc(ctx, db, username, excludeID)
	}
	return false, nil
}

func (f *FakeUserRepo) EmailTaken(ctx context.Context, db bun.IDB, email string, excludeID int64) (bool, error) {
	f.record("EmailTaken")
	if f.EmailTakenFunc != nil {
		return f.EmailTakenFunc(ctx, db, email, excludeID)
	}
	return false, nil
}

func (f *FakeUserRepo) Create(ctx context.Context, db bun.IDB, user *userdb.User) error {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, user)
	}
	return nil
}

func (f *FakeUserRepo) UpdateProfile(ctx context.Context, db bun.IDB, user *userdb.User) error {
	f.record("UpdateProfile")
	if f.UpdateProfileFunc != nil {
		return f.UpdateProfileFunc(ctx, db, user)
	}
	return nil
}

func (f *FakeUserRepo) Delete(ctx context.Context, db bun.IDB, id int64) error {
	f.record("Delete")
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, db, id)
	}
	return nil
}

func (f *FakeUserRepo) List(ctx context.Context, db bun.IDB) ([]userdb.User, error) {
	f.record("List")
	if f.ListFunc != nil {
		return f.ListFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeUserRepo) DistinctStoreLocations(ctx context.Context, db bun.IDB) ([]string, error) {
	f.record("DistinctStoreLocations")
	if f.DistinctStoreLocationsFunc != nil {
		return f.DistinctStoreLocationsFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeUserRepo) FindRolesByName(ctx context.Context, db bun.IDB, names []string) ([]userdb.Role, error) {
	f.record("FindRolesByName")
	if f.FindRolesByNameFunc != nil {
		return f.FindRolesByNameFunc(ctx, db, names)
	}
	return nil, nil
}

func (f *FakeUserRepo) SetRoles(ctx context.Context, db bun.IDB, userID int64, roleIDs []int64) error {
	f.record("SetRoles")
	if f.SetRolesFunc != nil {
		return f.SetRolesFunc(ctx, db, userID, roleIDs)
	}
	return nil
}

func (f *FakeUserRepo) RoleNames(ctx context.Context, db bun.IDB, userIDs []int64) (map[int64][]string, error) {
	f.record("RoleNames")
	if f.RoleNamesFunc != nil {
		return f.RoleNamesFunc(ctx, db, userIDs)
	}
	return map[int64][]string{}, nil
}

var _ userdb.Repository = (*FakeUserRepo)(nil)
