package model

// UserRole distinguishes clients from the site administrator.
type UserRole string

const (
	RoleClient UserRole = "CLIENT"
	RoleAdmin  UserRole = "ADMIN"
)

// User represents a registered user of the booking platform.
// Passwords are stored and compared in plaintext; the system has no
// credential hashing or token model.
type User struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Role     UserRole `json:"role"`
	Password string   `json:"password,omitempty"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
