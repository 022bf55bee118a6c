// Package error defines domain-specific errors for the finance tracker.
package error

import "errors"

// Dashboard domain errors.
var (
	// ErrInvalidMonthKey is returned when a month key is not in YYYY-MM form.
	ErrInvalidMonthKey = errors.New("month key must be in YYYY-MM format")

	// ErrInvalidWindow is returned when a trailing window length is not positive.
	ErrInvalidWindow = errors.New("window must span at least one month")
)

// DashboardErrorCode defines error codes for dashboard errors.
type DashboardErrorCode string

const (
	ErrCodeInvalidMonthKey       DashboardErrorCode = "DSH-010001"
	ErrCodeInvalidWindow         DashboardErrorCode = "DSH-010002"
	ErrCodeDashboardStoreFailure DashboardErrorCode = "DSH-020001"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
