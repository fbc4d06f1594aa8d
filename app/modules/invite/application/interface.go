package inviteservice

import (
	"context"

	invitedb "github.com/Black-And-White-Club/budtender-trivia/app/modules/invite/infrastructure/repositories"
)

// CreateRequest describes a new invite code.
type CreateRequest struct {
	StoreLocation string `json:"storeLocation"`
	IsReusable    bool   `json:"isReusable"`
	MaxUses       *int   `json:"maxUses"`
}

// Service defines invite code administration.
type Service interface {
	CreateInvite(ctx context.Context, req CreateRequest) (*invitedb.InviteCode, error)
	ListInvites(ctx context.Context) ([]invitedb.InviteCode, error)
	DeleteInvite(ctx context.Context, id int64) (*invitedb.InviteCode, error)
}
