// Package error defines domain-specific errors for the finance tracker.
package error

import "errors"

// Scope-token errors.
var (
	// ErrMissingScopeToken is returned when no scope token accompanies a request.
	ErrMissingScopeToken = errors.New("scope token is required")

	// ErrInvalidScopeToken is returned when the scope token fails validation.
	ErrInvalidScopeToken = errors.New("invalid or expired scope token")
)

// AuthErrorCode defines error codes for scope-token errors.
type AuthErrorCode string

const (
	ErrCodeMissingToken AuthErrorCode = "AUTH-010001"
	ErrCodeInvalidToken AuthErrorCode = "AUTH-010002"
	ErrCodeRateLimited  AuthErrorCode = "AUTH-010003"
)
