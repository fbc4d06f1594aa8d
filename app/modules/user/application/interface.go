package userservice

import (
	"context"
	"time"
)

// Profile is the public view of a user account.
type Profile struct {
	ID            int64     `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	StoreLocation *string   `json:"storeLocation"`
	Roles         []string  `json:"roles"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ProfileUpdate carries the optional fields of a profile edit. A nil field is
// left unchanged; an empty StoreLocation clears it.
type ProfileUpdate struct {
	Username      *string `json:"username"`
	Email         *string `json:"email"`
	StoreLocation *string `json:"storeLocation"`
}

// UpdateResult reports whether an edit changed anything.
type UpdateResult struct {
	Changed bool
	Profile Profile
}

// Service defines the user account operations.
type Service interface {
	GetCurrentUser(ctx context.Context, userID int64) (Profile, error)
	UpdateCurrentUser(ctx context.Context, userID int64, update ProfileUpdate) (UpdateResult, error)
	ListUsers(ctx context.Context) ([]Profile, error)
	DeleteUser(ctx context.Context, actorID, targetID int64) error
	ListStoreLocations(ctx context.Context) ([]string, error)

	// RolesOf returns the role names held by a user.
	RolesOf(ctx context.Context, userID int64) ([]string, error)
}
