package domain

import (
	"fmt"
	"strings"
)

// Role is the caller's role, resolved once when the identity is verified.
type Role uint8

const (
	RoleAdmin Role = iota + 1
	RoleOperator
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleOperator:
		return "operator"
	default:
		return fmt.Sprintf("role(%d)", uint8(r))
	}
}

// ParseRole maps the spellings found in issued tokens to a Role.
func ParseRole(v string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "admin", "administrator", "amministratore":
		return RoleAdmin, nil
	case "operator", "operatore":
		return RoleOperator, nil
	default:
		return 0, fmt.Errorf("unknown role %q", v)
	}
}

// Identity is a verified caller.
type Identity struct {
	UserID int64
	Role   Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
