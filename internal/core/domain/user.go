package domain

import "time"

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// Permission grants a set of actions ("view", "create", "update", "delete")
// on a single back-office module ("customers", "messages", ...).
type Permission struct {
	Module  string   `json:"module"`
	Actions []string `json:"actions"`
}

// User models an authenticated back-office actor.
type User struct {
	ID           string       `json:"id"`
	Username     string       `json:"username"`
	Email        string       `json:"email,omitempty"`
	PasswordHash string       `json:"-"`
	Role         string       `json:"role"`
	Permissions  []Permission `json:"permissions,omitempty"`
	IsActive     bool         `json:"is_active"`
	LastLoginAt  *time.Time   `json:"last_login_at,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Can reports whether the user may perform action on module.
// Admins are allowed everything; editors are checked against their
// permission pairs.
func (u *User) Can(module, action string) bool {
	if u.Role == RoleAdmin {
		return true
	}
	for _, p := range u.Permissions {
		if p.Module != module {
			continue
		}
		for _, a := range p.Actions {
			if a == action {
				return true
			}
		}
	}
	return false
}
