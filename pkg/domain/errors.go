package domain

import "errors"

// Authentication errors
var (
	ErrTenantNotFound     = errors.New("tenant not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionInvalid     = errors.New("session invalid")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrSettingsNotFound   = errors.New("settings not found")
)

// Validation errors
var (
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrMissingField     = errors.New("missing required field")
	ErrInvalidDocument  = errors.New("invalid settings document")
)
