package csvimport

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/jinofin/backend/internal/application/adapter"
	"github.com/jinofin/backend/internal/application/usecase/period"
)

// ExportCSVInput represents the input for exporting transactions. An empty
// MonthKey exports the trailing twelve months.
type ExportCSVInput struct {
	HouseholdID uuid.UUID
	MonthKey    string
}

// DefaultExportMonths is the trailing window used when no month is selected.
const DefaultExportMonths = 12

// ExportCSVUseCase streams the household's transactions as CSV. The exported
// file round-trips through the import normalizer to equivalent records,
// modulo id and createdAt, which are not exported.
type ExportCSVUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewExportCSVUseCase creates a new ExportCSVUseCase instance.
func NewExportCSVUseCase(transactionRepo adapter.TransactionRepository) *ExportCSVUseCase {
	return &ExportCSVUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute writes the CSV to w and returns the number of exported records.
func (uc *ExportCSVUseCase) Execute(ctx context.Context, input ExportCSVInput, w io.Writer) (int, error) {
	var window period.Range
	var err error
	if input.MonthKey != "" {
		window, err = period.MonthRange(input.MonthKey, time.Local)
	} else {
		window, err = period.TrailingMonths(DefaultExportMonths, time.Now())
	}
	if err != nil {
		return 0, err
	}

	transactions, err := uc.transactionRepo.FindByWindow(ctx, input.HouseholdID, window, adapter.TransactionFilter{})
	if err != nil {
		return 0, fmt.Errorf("failed to load transactions for export: %w", err)
	}

	if err := WriteCSV(w, transactions); err != nil {
		return 0, fmt.Errorf("failed to write CSV: %w", err)
	}
	return len(transactions), nil
}
