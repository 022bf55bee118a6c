// Package error defines domain-specific errors for the finance tracker.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the store.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionAmount is returned when the amount is not a finite positive number.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrMissingTransactionCategory is returned when the category label is empty.
	ErrMissingTransactionCategory = errors.New("transaction category is required")

	// ErrInvalidTransactionDate is returned when the transaction date is missing or unparseable.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrNotAuthorizedToModifyTransaction is returned when the transaction belongs to another household.
	ErrNotAuthorizedToModifyTransaction = errors.New("not authorized to modify transaction")

	// ErrUndoExpired is returned when the undo window for a deleted transaction has passed.
	ErrUndoExpired = errors.New("nothing to undo for this transaction")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010002"
	ErrCodeMissingCategory          TransactionErrorCode = "TXN-010003"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "TXN-010004"
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-010005"
	ErrCodeNotAuthorizedTransaction TransactionErrorCode = "TXN-010006"
	ErrCodeUndoExpired              TransactionErrorCode = "TXN-010007"

	// Infrastructure errors (02XXXX)
	ErrCodeTransactionStoreFailure TransactionErrorCode = "TXN-020001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
