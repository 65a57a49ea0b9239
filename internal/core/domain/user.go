package domain

import "time"

const RoleAdmin = "admin"

// User is a registered shopper. Email is the unique key; Role is empty for
// everyone who has not been promoted.
type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email"`
	Image     string    `json:"image,omitempty"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// IsAdmin reports whether the stored role grants admin privilege.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
