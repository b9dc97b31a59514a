package models

// Role is the closed set of actor roles. Keeping it a named type makes the
// privilege branches explicit instead of comparing loose strings.
type Role string

const (
	RoleUser       Role = "user"
	RoleConsultant Role = "consultant"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleConsultant, RoleAdmin, RoleSuperAdmin:
		return Role(s), true
	}
	return "", false
}

// Privileged reports whether the role bypasses ownership and status
// transition checks.
func (r Role) Privileged() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}
