package models

import "strings"

// Role is the access level a user is evaluated with. Users persist the
// role name they registered with; ParseRole maps it onto a Role.
type Role int

const (
	RoleMember Role = iota
	RoleAdmin
)

const adminRoleName = "admin"

// ParseRole returns RoleAdmin if name is "admin" in any letter case
// and RoleMember otherwise.
func ParseRole(name string) Role {
	if strings.EqualFold(name, adminRoleName) {
		return RoleAdmin
	}
	return RoleMember
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleMember:
		return "member"
	default:
		return "unknown"
	}
}

type User struct {
	ID           int64  `db:"user_id"`
	Username     string `db:"user_name"`
	Role         string `db:"role"`
	PasswordHash string `db:"password_hash"`
}

// Access returns the Role the user's role name maps to.
func (u *User) Access() Role {
	return ParseRole(u.Role)
}
