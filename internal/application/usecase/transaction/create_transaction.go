// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jinofin/backend/internal/application/adapter"
	"github.com/jinofin/backend/internal/application/usecase/amount"
	"github.com/jinofin/backend/internal/domain/entity"
	domainerror "github.com/jinofin/backend/internal/domain/error"
)

// MaxNoteLength is the maximum allowed length for transaction notes.
const MaxNoteLength = 1000

// CreateTransactionInput represents the entry-form save. RawAmount is the
// free-form text the user typed; it is normalized here, at the point of
// entry, so the store never receives a value that failed parsing.
type CreateTransactionInput struct {
	HouseholdID uuid.UUID
	Type        entity.TransactionType
	RawAmount   string
	Category    string
	Date        time.Time
	Note        string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if !input.Type.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	parsed := amount.Parse(input.RawAmount)
	value, ok := parsed.Decimal()
	if !ok || value.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be a positive number",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingCategory,
			"category is required",
			domainerror.ErrMissingTransactionCategory,
		)
	}

	if input.Date.IsZero() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	note := strings.TrimSpace(input.Note)
	if len(note) > MaxNoteLength {
		note = note[:MaxNoteLength]
	}

	txn := entity.NewTransaction(
		input.HouseholdID,
		input.Type,
		value,
		category,
		input.Date,
		note,
	)

	if err := uc.transactionRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{Transaction: toOutput(txn)}, nil
}
