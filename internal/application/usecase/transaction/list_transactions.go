// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jinofin/backend/internal/application/adapter"
	"github.com/jinofin/backend/internal/application/usecase/period"
	"github.com/jinofin/backend/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing transactions.
// Either MonthKey or an explicit Start/End pair bounds the window; MonthKey
// wins when both are set.
type ListTransactionsInput struct {
	HouseholdID uuid.UUID
	MonthKey    string
	Start       *time.Time
	End         *time.Time
	Type        *entity.TransactionType
	Category    string
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
	Total        int
}

// ListTransactionsUseCase handles transaction listing logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute retrieves the household's transactions in the window, ordered by
// date descending with store insertion order breaking ties.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	window, err := uc.resolveWindow(input)
	if err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.FindByWindow(ctx, input.HouseholdID, window, adapter.TransactionFilter{
		Type:     input.Type,
		Category: input.Category,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	output := &ListTransactionsOutput{
		Transactions: make([]*TransactionOutput, 0, len(transactions)),
		Total:        len(transactions),
	}
	for _, txn := range transactions {
		output.Transactions = append(output.Transactions, toOutput(txn))
	}
	return output, nil
}

func (uc *ListTransactionsUseCase) resolveWindow(input ListTransactionsInput) (period.Range, error) {
	if input.MonthKey != "" {
		return period.MonthRange(input.MonthKey, time.Local)
	}

	window := period.Range{}
	if input.Start != nil {
		window.Start = *input.Start
	}
	if input.End != nil {
		window.End = *input.End
	} else {
		window.End = time.Now()
	}
	return window, nil
}
