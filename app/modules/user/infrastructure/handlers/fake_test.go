package userhandlers

import (
	"context"

	userservice "github.com/Black-And-White-Club/budtender-trivia/app/modules/user/application"
)

type FakeService struct {
	GetCurrentUserFunc     func(ctx context.Context, userID int64) (userservice.Profile, error)
	UpdateCurrentUserFunc  func(ctx context.Context, userID int64, update userservice.ProfileUpdate) (userservice.UpdateResult, error)
	ListUsersFunc          func(ctx context.Context) ([]userservice.Profile, error)
	DeleteUserFunc         func(ctx context.Context, actorID, targetID int64) error
	ListStoreLocationsFunc func(ctx context.Context) ([]string, error)
}

func (f *FakeService) GetCurrentUser(ctx context.Context, userID int64) (userservice.Profile, error) {
	if f.GetCurrentUserFunc != nil {
		return f.GetCurrentUserFunc(ctx, userID)
	}
	return userservice.Profile{}, userservice.ErrUserNotFound
}

func (f *FakeService) UpdateCurrentUser(ctx context.Context, userID int64, update userservice.ProfileUpdate) (userservice.UpdateResult, error) {
	if f.UpdateCurrentUserFunc != nil {
		return f.UpdateCurrentUserFunc(ctx, userID, update)
	}
	return userservice.UpdateResult{}, nil
}

func (f *FakeService) ListUsers(ctx context.Context) ([]userservice.Profile, error) {
	if f.ListUsersFunc != nil {
		return f.ListUsersFunc(ctx)
	}
	return []userservice.Profile{}, nil
}

func (f *FakeService) DeleteUser(ctx context.Context, actorID, targetID int64) error {
	if f.DeleteUserFunc != nil {
		return f.DeleteUserFunc(ctx, actorID, targetID)
	}
	return nil
}

func (f *FakeService) ListStoreLocations(ctx context.Context) ([]string, error) {
	if f.ListStoreLocationsFunc != nil {
		return f.ListStoreLocationsFunc(ctx)
	}
	return []string{}, nil
}

func (f *FakeService) RolesOf(ctx context.Context, userID int64) ([]string, error) {
	return nil, nil
}

var _ userservice.Service = (*FakeService)(nil)
