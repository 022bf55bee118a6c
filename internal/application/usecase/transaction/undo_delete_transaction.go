// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jinofin/backend/internal/application/adapter"
	domainerror "github.com/jinofin/backend/internal/domain/error"
)

// UndoDeleteTransactionInput represents the input for undoing a deletion.
type UndoDeleteTransactionInput struct {
	HouseholdID   uuid.UUID
	TransactionID uuid.UUID
}

// UndoDeleteTransactionOutput represents the restored transaction.
type UndoDeleteTransactionOutput struct {
	Transaction *TransactionOutput
}

// UndoDeleteTransactionUseCase re-creates a recently deleted transaction
// with its original identifier and best-effort CreatedAt. This is not a
// transactional undo: delete and undo are two independent writes.
type UndoDeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	undoStash       adapter.UndoStash
}

// NewUndoDeleteTransactionUseCase creates a new UndoDeleteTransactionUseCase instance.
func NewUndoDeleteTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	undoStash adapter.UndoStash,
) *UndoDeleteTransactionUseCase {
	return &UndoDeleteTransactionUseCase{
		transactionRepo: transactionRepo,
		undoStash:       undoStash,
	}
}

// Execute restores the stashed transaction.
func (uc *UndoDeleteTransactionUseCase) Execute(ctx context.Context, input UndoDeleteTransactionInput) (*UndoDeleteTransactionOutput, error) {
	txn, err := uc.undoStash.Take(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUndoExpired) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeUndoExpired,
				"nothing to undo for this transaction",
				domainerror.ErrUndoExpired,
			)
		}
		return nil, err
	}

	if txn.HouseholdID != input.HouseholdID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"not authorized to modify transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	if err := uc.transactionRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to restore transaction: %w", err)
	}

	return &UndoDeleteTransactionOutput{Transaction: toOutput(txn)}, nil
}
