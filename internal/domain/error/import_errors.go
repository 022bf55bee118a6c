// Package error defines domain-specific errors for the finance tracker.
package error

import "errors"

// CSV import domain errors.
var (
	// ErrEmptyImport is returned when an import request contains no rows.
	ErrEmptyImport = errors.New("at least one row is required")

	// ErrNoValidRows is returned when every row of an import failed validation.
	ErrNoValidRows = errors.New("no valid rows to commit")

	// ErrMalformedCSV is returned when the uploaded file is not parseable as CSV.
	ErrMalformedCSV = errors.New("malformed CSV file")

	// ErrMissingHeaderRow is returned when the file has no header row.
	ErrMissingHeaderRow = errors.New("missing CSV header row")
)

// ImportErrorCode defines error codes for CSV import errors.
type ImportErrorCode string

const (
	ErrCodeEmptyImport        ImportErrorCode = "IMP-010001"
	ErrCodeNoValidRows        ImportErrorCode = "IMP-010002"
	ErrCodeMalformedCSV       ImportErrorCode = "IMP-010003"
	ErrCodeMissingHeaderRow   ImportErrorCode = "IMP-010004"
	ErrCodeImportStoreFailure ImportErrorCode = "IMP-020001"
)

// ImportError represents a CSV import error with code and message.
type ImportError struct {
	Code    ImportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ImportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ImportError) Unwrap() error {
	return e.Err
}

// NewImportError creates a new ImportError with the given code and message.
func NewImportError(code ImportErrorCode, message string, err error) *ImportError {
	return &ImportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
