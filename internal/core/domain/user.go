package domain

import "time"

const (
	RoleClient = "CLIENT"
	RoleGuide  = "GUIDE"
	RoleAdmin  = "ADMIN"
)

// ValidRole reports whether role is one of the known role tags.
func ValidRole(role string) bool {
	return role == RoleClient || role == RoleGuide || role == RoleAdmin
}

// User is an account record. Email doubles as the login username.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Principal is the authenticated identity bound to a request. It is a
// value copy taken at resolution time; mutating the stored user never
// affects an in-flight request.
type Principal struct {
	ID    int64
	Email string
	Role  string
}

// PrincipalOf builds the request-scoped identity for a user.
func PrincipalOf(u *User) Principal {
	return Principal{ID: u.ID, Email: u.Email, Role: u.Role}
}
