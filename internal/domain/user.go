package domain

import "time"

// Role is the access level attached to a stored user.
type Role string

const (
	// RoleNone is the default for accounts created on first login.
	RoleNone Role = ""
	// RoleAdmin unlocks catalog mutation and the user listing.
	RoleAdmin Role = "admin"
)

// User is a stored identity, keyed by email.
type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Photo     string    `json:"photoURL,omitempty"`
	Role      Role      `json:"role,omitempty"`
	CreatedAt time.Time `json:"-"`
}

// IsAdmin reports whether the user carries the elevated role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
