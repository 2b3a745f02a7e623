package domain

import "errors"

// Sentinel errors shared across services. The API layer maps each of these
// to a deterministic HTTP status in the central error handler.
var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAnonymous          = errors.New("anonymous user")
	ErrAccessDenied       = errors.New("access denied")

	ErrUserNotFound    = errors.New("user not found")
	ErrClientNotFound  = errors.New("client not found")
	ErrGuideNotFound   = errors.New("guide not found")
	ErrCountryNotFound = errors.New("country not found")
	ErrTourNotFound    = errors.New("tour not found")
	ErrBookingNotFound = errors.New("booking not found")

	ErrUserExists    = errors.New("user already exists")
	ErrClientExists  = errors.New("client already exists")
	ErrGuideExists   = errors.New("guide already exists")
	ErrCountryExists = errors.New("country already exists")
	ErrTourExists    = errors.New("tour already exists")
	ErrBookingExists = errors.New("booking already exists")
)
