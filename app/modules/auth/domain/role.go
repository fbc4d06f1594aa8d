package authdomain

import "strings"

// Role is a permission label attached to a user.
type Role string

const (
	RoleUser      Role = "user"
	RoleAdmin     Role = "admin"
	RoleBudtender Role = "budtender"
)

// DefaultRole is assigned at signup when no roles are requested.
const DefaultRole = RoleUser

// AllRoles lists every role seeded into the roles table.
var AllRoles = []Role{RoleUser, RoleAdmin, RoleBudtender}

// IsValid checks if the role is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleBudtender:
		return true
	default:
		return false
	}
}

// Authority returns the client-facing authority string, e.g. ROLE_ADMIN.
func (r Role) Authority() string {
	return "ROLE_" + strings.ToUpper(string(r))
}

// Authorities converts role names into authority strings, preserving order.
func Authorities(roles []string) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, Role(r).Authority())
	}
	return out
}
