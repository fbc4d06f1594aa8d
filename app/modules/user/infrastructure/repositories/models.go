package userdb

import (
	"time"

	"github.com/uptrace/bun"
)

// User is an account that plays rounds and owns answer events.
type User struct {
	bun.BaseModel  `bun:"table:users,alias:u"`
	ID             int64     `bun:"id,pk,autoincrement"`
	Username       string    `bun:"username,notnull,unique"`
	Email          string    `bun:"email,notnull,unique"`
	PasswordHash   string    `bun:"password_hash,notnull"`
	StoreLocation  *string   `bun:"store_location"`
	InviteCodeUsed *string   `bun:"invite_code_used"`
	CreatedAt      time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt      time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// Role is a named permission set.
type Role struct {
	bun.BaseModel `bun:"table:roles,alias:r"`
	ID            int64  `bun:"id,pk,autoincrement"`
	Name          string `bun:"name,notnull,unique"`
}

// UserRole links a user to a role.
type UserRole struct {
	bun.BaseModel `bun:"table:user_roles,alias:ur"`
	UserID        int64 `bun:"user_id,pk"`
	RoleID        int64 `bun:"role_id,pk"`
}
