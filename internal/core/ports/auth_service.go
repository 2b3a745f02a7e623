package ports

import (
	"context"

	"github.com/ellka-ua/tour-agency-api/internal/core/domain"
)

// RegisterInput carries all data needed to create an account plus its
// linked client or guide profile.
type RegisterInput struct {
	Email    string
	Password string
	Role     string
	Name     string
	// Client-only fields.
	PassportNumber string
	Phone          string
	// Guide-only field.
	Language string
}

// AuthResult is returned on successful login.
type AuthResult struct {
	User  *domain.User
	Token string
}

// AuthService coordinates registration, login and current-user resolution.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login returns (nil, nil) when the account exists but the password
	// does not match. An unknown email returns domain.ErrUserNotFound.
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	CurrentUser(ctx context.Context) (*domain.User, error)
	// Logout returns the current user; tokens stay valid until expiry.
	Logout(ctx context.Context) (*domain.User, error)
}
