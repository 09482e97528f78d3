package models

import "time"

// Role is the closed set of account roles. Route access and the home
// redirect for each account are exhaustive switches over this type.
type Role string

const (
	RoleStudent  Role = "student"
	RoleAdmin    Role = "admin"
	RoleGuardian Role = "guardian"
)

// ParseRole maps a stored string to a Role, reporting whether it is one
// of the known values.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleStudent, RoleAdmin, RoleGuardian:
		return Role(s), true
	}
	return "", false
}

// Valid reports whether the role is one of the enumerated values.
func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

// HomePath returns the dashboard path for the role. Unknown values fall
// back to the application root.
func (r Role) HomePath() string {
	switch r {
	case RoleStudent:
		return "/student"
	case RoleAdmin:
		return "/admin"
	case RoleGuardian:
		return "/guardian"
	default:
		return "/"
	}
}

// User represents an authenticated identity. Staff accounts (admin,
// guardian, and email-registered students) live in the users table;
// roster students are adapted into a User at login time and carry no
// email or password hash.
type User struct {
	ID            int64
	Username      string
	Email         string
	Role          Role
	PasswordHash  string
	OAuthProvider string
	OAuthSubject  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Session represents an authenticated browser session
type Session struct {
	ID        string
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired checks if the session has expired
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
