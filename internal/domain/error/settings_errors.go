// Package error defines domain-specific errors for the finance tracker.
package error

import "errors"

// Settings domain errors.
var (
	// ErrSettingsNotFound is returned when no settings document exists for a household.
	ErrSettingsNotFound = errors.New("household settings not found")

	// ErrInvalidCurrency is returned when the currency is not a three-letter ISO code.
	ErrInvalidCurrency = errors.New("invalid currency code")

	// ErrNegativeBudget is returned when a budget limit is negative.
	ErrNegativeBudget = errors.New("budget limit must not be negative")

	// ErrEmptyCategoryName is returned when a category entry is blank.
	ErrEmptyCategoryName = errors.New("category name must not be empty")
)

// SettingsErrorCode defines error codes for settings errors.
type SettingsErrorCode string

const (
	ErrCodeSettingsNotFound     SettingsErrorCode = "SET-010001"
	ErrCodeInvalidCurrency      SettingsErrorCode = "SET-010002"
	ErrCodeNegativeBudget       SettingsErrorCode = "SET-010003"
	ErrCodeEmptyCategoryName    SettingsErrorCode = "SET-010004"
	ErrCodeSettingsStoreFailure SettingsErrorCode = "SET-020001"
)

// SettingsError represents a settings error with code and message.
type SettingsError struct {
	Code    SettingsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SettingsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SettingsError) Unwrap() error {
	return e.Err
}

// NewSettingsError creates a new SettingsError with the given code and message.
func NewSettingsError(code SettingsErrorCode, message string, err error) *SettingsError {
	return &SettingsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
