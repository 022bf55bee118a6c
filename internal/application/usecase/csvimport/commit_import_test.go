package csvimport

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/jinofin/backend/internal/application/adapter"
	"github.com/jinofin/backend/internal/application/usecase/period"
	"github.com/jinofin/backend/internal/domain/entity"
	domainerror "github.com/jinofin/backend/internal/domain/error"
)

// fakeTransactionRepo records batch calls for assertion.
type fakeTransactionRepo struct {
	batches  [][]*entity.Transaction
	batchErr error
}

func (f *fakeTransactionRepo) Create(ctx context.Context, txn *entity.Transaction) error {
	return nil
}

func (f *fakeTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (f *fakeTransactionRepo) FindByWindow(ctx context.Context, householdID uuid.UUID, window period.Range, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	return nil, nil
}

func (f *fakeTransactionRepo) Delete(ctx context.Context, id uuid.UUID, householdID uuid.UUID) error {
	return nil
}

func (f *fakeTransactionRepo) BatchCreate(ctx context.Context, transactions []*entity.Transaction) error {
	if f.batchErr != nil {
		return f.batchErr
	}
	f.batches = append(f.batches, transactions)
	return nil
}

func TestCommitImportUseCase_Execute(t *testing.T) {
	householdID := uuid.New()

	t.Run("valid rows commit in one batch", func(t *testing.T) {
		repo := &fakeTransactionRepo{}
		uc := NewCommitImportUseCase(repo)

		output, err := uc.Execute(context.Background(), CommitImportInput{
			HouseholdID: householdID,
			Rows: []map[string]string{
				{"type": "expense", "amount": "12,50", "category": "Food", "date": "2024-03-15", "note": "lunch"},
				{"type": "income", "amount": "3000", "category": "Salary", "date": "2024-03-01"},
				{"type": "expense", "amount": "not a number", "category": "Food", "date": "2024-03-16"},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.ImportedCount != 2 || output.SkippedCount != 1 {
			t.Errorf("expected 2 imported and 1 skipped, got %d/%d", output.ImportedCount, output.SkippedCount)
		}
		if len(repo.batches) != 1 {
			t.Fatalf("expected exactly one batch write, got %d", len(repo.batches))
		}
		if len(repo.batches[0]) != 2 {
			t.Errorf("expected 2 transactions in batch, got %d", len(repo.batches[0]))
		}
		for _, txn := range repo.batches[0] {
			if txn.HouseholdID != householdID {
				t.Error("expected batch transactions to carry the household scope")
			}
			if txn.ID == uuid.Nil {
				t.Error("expected batch transactions to have assigned IDs")
			}
		}
	})

	t.Run("empty input is rejected", func(t *testing.T) {
		uc := NewCommitImportUseCase(&fakeTransactionRepo{})

		_, err := uc.Execute(context.Background(), CommitImportInput{HouseholdID: householdID})
		if !errors.Is(err, domainerror.ErrEmptyImport) {
			t.Errorf("expected ErrEmptyImport, got %v", err)
		}
	})

	t.Run("all invalid rows are rejected without a batch", func(t *testing.T) {
		repo := &fakeTransactionRepo{}
		uc := NewCommitImportUseCase(repo)

		_, err := uc.Execute(context.Background(), CommitImportInput{
			HouseholdID: householdID,
			Rows: []map[string]string{
				{"type": "expense", "amount": "abc", "category": "Food", "date": "2024-03-15"},
				{"type": "expense", "amount": "5", "category": "Food", "date": "nonsense"},
			},
		})
		if !errors.Is(err, domainerror.ErrNoValidRows) {
			t.Errorf("expected ErrNoValidRows, got %v", err)
		}
		if len(repo.batches) != 0 {
			t.Error("expected no batch write for all-invalid input")
		}
	})

	t.Run("store failure surfaces as import error", func(t *testing.T) {
		repo := &fakeTransactionRepo{batchErr: errors.New("connection lost")}
		uc := NewCommitImportUseCase(repo)

		_, err := uc.Execute(context.Background(), CommitImportInput{
			HouseholdID: householdID,
			Rows: []map[string]string{
				{"type": "expense", "amount": "5", "category": "Food", "date": "2024-03-15"},
			},
		})

		var impErr *domainerror.ImportError
		if !errors.As(err, &impErr) || impErr.Code != domainerror.ErrCodeImportStoreFailure {
			t.Errorf("expected import store failure, got %v", err)
		}
	})
}
