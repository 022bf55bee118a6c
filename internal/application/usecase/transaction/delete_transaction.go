// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jinofin/backend/internal/application/adapter"
	domainerror "github.com/jinofin/backend/internal/domain/error"
)

// UndoWindow is how long a deleted transaction stays restorable.
const UndoWindow = 15 * time.Minute

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	HouseholdID   uuid.UUID
	TransactionID uuid.UUID
}

// DeleteTransactionUseCase handles transaction deletion. Deletion is
// immediate at the store; the deleted record is stashed for the undo window
// as a best-effort convenience, not a transactional guarantee.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	undoStash       adapter.UndoStash
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	undoStash adapter.UndoStash,
) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
		undoStash:       undoStash,
	}
}

// Execute performs the transaction deletion.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	txn, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return err
	}

	if txn.HouseholdID != input.HouseholdID {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"not authorized to modify transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	if err := uc.transactionRepo.Delete(ctx, input.TransactionID, input.HouseholdID); err != nil {
		return err
	}

	// Best effort: a failed stash only costs the undo affordance.
	if err := uc.undoStash.Stash(ctx, txn, UndoWindow); err != nil {
		slog.Warn("Failed to stash deleted transaction for undo",
			"transactionID", input.TransactionID,
			"error", err,
		)
	}

	return nil
}
