package csvimport

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jinofin/backend/internal/application/adapter"
	"github.com/jinofin/backend/internal/domain/entity"
	domainerror "github.com/jinofin/backend/internal/domain/error"
)

// CommitImportInput represents the input for committing a CSV import. Rows
// are re-normalized here; normalization is pure, so preview and commit agree
// on which rows are valid.
type CommitImportInput struct {
	HouseholdID uuid.UUID
	Rows        []map[string]string
}

// CommitImportOutput represents the result of the batch commit.
type CommitImportOutput struct {
	ImportedCount int
	SkippedCount  int
}

// CommitImportUseCase persists the valid subset of an import in one atomic
// batch. Invalid rows are always skipped; they are never partially committed.
type CommitImportUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewCommitImportUseCase creates a new CommitImportUseCase instance.
func NewCommitImportUseCase(transactionRepo adapter.TransactionRepository) *CommitImportUseCase {
	return &CommitImportUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the atomic batch commit. The batch write is issued exactly
// once; either every valid row is persisted or none are.
func (uc *CommitImportUseCase) Execute(ctx context.Context, input CommitImportInput) (*CommitImportOutput, error) {
	if len(input.Rows) == 0 {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeEmptyImport,
			"at least one row is required",
			domainerror.ErrEmptyImport,
		)
	}

	result := NormalizeRows(input.Rows, nil, time.Local)

	var transactions []*entity.Transaction
	skipped := 0
	for _, row := range result.Rows {
		if !row.Valid {
			skipped++
			continue
		}

		value, err := decimal.NewFromString(row.AmountText)
		if err != nil {
			// Valid rows always carry a parseable normalized amount; treat
			// anything else as an invalid row rather than aborting the batch.
			skipped++
			continue
		}

		transactions = append(transactions, entity.NewTransaction(
			input.HouseholdID,
			row.Type,
			value,
			row.Category,
			*row.Date,
			row.Note,
		))
	}

	if len(transactions) == 0 {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeNoValidRows,
			"no valid rows to commit",
			domainerror.ErrNoValidRows,
		)
	}

	if err := uc.transactionRepo.BatchCreate(ctx, transactions); err != nil {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeImportStoreFailure,
			"failed to commit import batch",
			err,
		)
	}

	return &CommitImportOutput{
		ImportedCount: len(transactions),
		SkippedCount:  skipped,
	}, nil
}
