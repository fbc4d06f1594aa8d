package authservice

import (
	"context"
	"time"

	authdomain "github.com/Black-And-White-Club/budtender-trivia/app/modules/auth/domain"
	authjwt "github.com/Black-And-White-Club/budtender-trivia/app/modules/auth/infrastructure/jwt"
	"github.com/Black-And-White-Club/budtender-trivia/app/modules/auth/infrastructure/password"
	invitedb "github.com/Black-And-White-Club/budtender-trivia/app/modules/invite/infrastructure/repositories"
	userdb "github.com/Black-And-White-Club/budtender-trivia/app/modules/user/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake User Repo
// ------------------------

type FakeUserRepo struct {
	trace []string

	GetByUsernameFunc   func(ctx context.Context, db bun.IDB, username string) (*userdb.User, error)
	UsernameTakenFunc   func(ctx context.Context, db bun.IDB, username string, excludeID int64) (bool, error)
	EmailTakenFunc      func(ctx context.Context, db bun.IDB, email string, excludeID int64) (bool, error)
	CreateFunc          func(ctx context.Context, db bun.IDB, user *userdb.User) error
	FindRolesByNameFunc func(ctx context.Context, db bun.IDB, names []string) ([]userdb.Role, error)
	SetRolesFunc        func(ctx context.Context, db bun.IDB, userID int64, roleIDs []int64) error
	RoleNamesFunc       func(ctx context.Context, db bun.IDB, userIDs []int64) (map[int64][]string, error)
}

func NewFakeUserRepo() *FakeUserRepo { return &FakeUserRepo{trace: []string{}} }

func (f *FakeUserRepo) record(step string) { f.trace = append(f.trace, step) }

func (f *FakeUserRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeUserRepo) GetByID(ctx context.Context, db bun.IDB, id int64) (*userdb.User, error) {
	f.record("GetByID")
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
	user.ID = 100
	return nil
}

func (f *FakeUserRepo) UpdateProfile(ctx context.Context, db bun.IDB, user *userdb.User) error {
	f.record("UpdateProfile")
	return nil
}

func (f *FakeUserRepo) Delete(ctx context.Context, db bun.IDB, id int64) error {
	f.record("Delete")
	return nil
}

func (f *FakeUserRepo) List(ctx context.Context, db bun.IDB) ([]userdb.User, error) {
	f.record("List")
	return nil, nil
}

func (f *FakeUserRepo) DistinctStoreLocations(ctx context.Context, db bun.IDB) ([]string, error) {
	f.record("DistinctStoreLocations")
	return nil, nil
}

func (f *FakeUserRepo) FindRolesByName(ctx context.Context, db bun.IDB, names []string) ([]userdb.Role, error) {
	f.record("FindRolesByName")
	if f.FindRolesByNameFunc != nil {
		return f.FindRolesByNameFunc(ctx, db, names)
	}
	seeded := map[string]int64{"user": 1, "admin": 2, "budtender": 3}
	var out []userdb.Role
	for _, n := range names {
		if id, ok := seeded[n]; ok {
			out = append(out, userdb.Role{ID: id, Name: n})
		}
	}
	return out, nil
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

// ------------------------
// Fake Invite Repo
// ------------------------

type FakeInviteRepo struct {
	trace []string

	GetByCodeForUpdateFunc func(ctx context.Context, db bun.IDB, code string) (*invitedb.InviteCode, error)
	IncrementUsesFunc      func(ctx context.Context, db bun.IDB, id int64) error
}

func NewFakeInviteRepo() *FakeInviteRepo { return &FakeInviteRepo{trace: []string{}} }

func (f *FakeInviteRepo) record(step string) { f.trace = append(f.trace, step) }

func (f *FakeInviteRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeInviteRepo) GetByID(ctx context.Context, db bun.IDB, id int64) (*invitedb.InviteCode, error) {
	f.record("GetByID")
	return nil, invitedb.ErrNotFound
}

func (f *FakeInviteRepo) Create(ctx context.Context, db bun.IDB, invite *invitedb.InviteCode) error {
	f.record("Create")
	return nil
}

func (f *FakeInviteRepo) List(ctx context.Context, db bun.IDB) ([]invitedb.InviteCode, error) {
	f.record("List")
	return nil, nil
}

func (f *FakeInviteRepo) Delete(ctx context.Context, db bun.IDB, id int64) error {
	f.record("Delete")
	return nil
}

func (f *FakeInviteRepo) CodeExists(ctx context.Context, db bun.IDB, code string) (bool, error) {
	f.record("CodeExists")
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

// ------------------------
// Fake token provider and hasher
// ------------------------

type FakeTokens struct {
	GenerateTokenFunc func(userID int64, ttl time.Duration) (string, error)
	ValidateTokenFunc func(token string) (*authdomain.Claims, error)
}

func (f *FakeTokens) GenerateToken(userID int64, ttl time.Duration) (string, error) {
	if f.GenerateTokenFunc != nil {
		return f.GenerateTokenFunc(userID, ttl)
	}
	return "token", nil
}

func (f *FakeTokens) ValidateToken(token string) (*authdomain.Claims, error) {
	if f.ValidateTokenFunc != nil {
		return f.ValidateTokenFunc(token)
	}
	return nil, authjwt.ErrInvalidToken
}

var _ authjwt.Provider = (*FakeTokens)(nil)

// plainHasher stores passwords with a fixed prefix.
type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

func (plainHasher) Compare(hash, plain string) error {
	if hash != "hashed:"+plain {
		return password.ErrMismatch
	}
	return nil
}

var _ password.Hasher = plainHasher{}
