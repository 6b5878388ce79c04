// Package common defines shared constants and sentinel errors used across
// RealtyDesk layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Registration / input errors.
	ErrValidation     = errors.New("validation error")
	ErrDuplicateEmail = errors.New("email already registered")

	// Login errors. ErrNotFound covers an unknown email; ErrInvalidCredentials
	// covers a known email with the wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Authorization errors (admin-only surfaces).
	ErrNotAuthorized = errors.New("not authorized")
)
