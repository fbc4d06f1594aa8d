package invitedb

import (
	"time"

	"github.com/uptrace/bun"
)

// InviteCode gates signup and assigns a default store location.
type InviteCode struct {
	bun.BaseModel `bun:"table:invite_codes,alias:ic"`
	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	Code          string    `bun:"code,notnull,unique" json:"code"`
	StoreLocation *string   `bun:"store_location" json:"storeLocation"`
	IsReusable    bool      `bun:"is_reusable,notnull" json:"isReusable"`
	MaxUses       *int      `bun:"max_uses" json:"maxUses"`
	UsesCount     int       `bun:"uses_count,notnull" json:"usesCount"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt     time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updatedAt"`
}

// Usable reports whether the code can admit one more signup.
func (c *InviteCode) Usable() bool {
	if c.IsReusable {
		return c.MaxUses == nil || c.UsesCount < *c.MaxUses
	}
	return c.UsesCount == 0
}
