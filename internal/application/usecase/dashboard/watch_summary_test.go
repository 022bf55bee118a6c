package dashboard

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jinofin/backend/internal/application/adapter"
	"github.com/jinofin/backend/internal/application/stream"
	"github.com/jinofin/backend/internal/application/usecase/period"
	"github.com/jinofin/backend/internal/domain/entity"
	domainerror "github.com/jinofin/backend/internal/domain/error"
)

// fakeStore is an in-memory record store wired to hubs the way the
// persistence layer is: every write notifies.
type fakeStore struct {
	mu       sync.Mutex
	records  []*entity.Transaction
	settings *entity.HouseholdSettings

	transactionsHub *stream.Hub
	settingsHub     *stream.Hub
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		transactionsHub: stream.NewHub(),
		settingsHub:     stream.NewHub(),
	}
}

func (f *fakeStore) Create(ctx context.Context, txn *entity.Transaction) error {
	f.mu.Lock()
	f.records = append(f.records, txn)
	f.mu.Unlock()
	f.transactionsHub.Notify(txn.HouseholdID)
	return nil
}

func (f *fakeStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (f *fakeStore) FindByWindow(ctx context.Context, householdID uuid.UUID, window period.Range, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Transaction, 0, len(f.records))
	for _, txn := range f.records {
		if txn.HouseholdID == householdID {
			out = append(out, txn)
		}
	}
	return out, nil
}

func (f *fakeStore) Delete(ctx context.Context, id uuid.UUID, householdID uuid.UUID) error {
	return nil
}

func (f *fakeStore) BatchCreate(ctx context.Context, transactions []*entity.Transaction) error {
	f.mu.Lock()
	f.records = append(f.records, transactions...)
	f.mu.Unlock()
	if len(transactions) > 0 {
		f.transactionsHub.Notify(transactions[0].HouseholdID)
	}
	return nil
}

func (f *fakeStore) Get(ctx context.Context, householdID uuid.UUID) (*entity.HouseholdSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.settings == nil {
		return nil, domainerror.ErrSettingsNotFound
	}
	return f.settings, nil
}

func (f *fakeStore) Upsert(ctx context.Context, settings *entity.HouseholdSettings) error {
	f.mu.Lock()
	f.settings = settings
	f.mu.Unlock()
	f.settingsHub.Notify(settings.HouseholdID)
	return nil
}

func awaitSnapshot(t *testing.T, snapshots <-chan stream.ViewSnapshot) stream.ViewSnapshot {
	t.Helper()
	select {
	case snapshot := <-snapshots:
		return snapshot
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a snapshot")
		return stream.ViewSnapshot{}
	}
}

func TestWatchSummaryUseCase_Execute(t *testing.T) {
	householdID := uuid.New()
	monthKey := period.MonthKey(time.Now())

	t.Run("initial snapshot then live updates", func(t *testing.T) {
		store := newFakeStore()
		uc := NewWatchSummaryUseCase(store, store, store.transactionsHub, store.settingsHub)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		snapshots, err := uc.Execute(ctx, WatchSummaryInput{HouseholdID: householdID, MonthKey: monthKey})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		initial := awaitSnapshot(t, snapshots)
		if !initial.Ready {
			t.Error("expected initial snapshot after the first load")
		}
		if !initial.Summary.TotalsByType.Expense.IsZero() {
			t.Error("expected empty initial totals")
		}

		// A write lands; the subscription re-queries and recomputes.
		txn := entity.NewTransaction(householdID, entity.TransactionTypeExpense,
			decimal.RequireFromString("25"), "Food", time.Now(), "")
		if err := store.Create(context.Background(), txn); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		updated := awaitSnapshot(t, snapshots)
		if updated.Summary.TotalsByType.Expense.String() != "25" {
			t.Errorf("expected expense 25 after write, got %s", updated.Summary.TotalsByType.Expense)
		}
	})

	t.Run("settings write updates left to spend", func(t *testing.T) {
		store := newFakeStore()
		uc := NewWatchSummaryUseCase(store, store, store.transactionsHub, store.settingsHub)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		snapshots, err := uc.Execute(ctx, WatchSummaryInput{HouseholdID: householdID, MonthKey: monthKey})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		awaitSnapshot(t, snapshots)

		doc := entity.NewHouseholdSettings(householdID)
		doc.CategoryBudgets["Food"] = decimal.RequireFromString("100")
		if err := store.Upsert(context.Background(), doc); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		updated := awaitSnapshot(t, snapshots)
		if len(updated.LeftToSpend) != 1 || updated.LeftToSpend[0].Category != "Food" {
			t.Errorf("expected Food projection after settings write, got %v", updated.LeftToSpend)
		}
	})

	t.Run("cancel closes the channel", func(t *testing.T) {
		store := newFakeStore()
		uc := NewWatchSummaryUseCase(store, store, store.transactionsHub, store.settingsHub)

		ctx, cancel := context.WithCancel(context.Background())
		snapshots, err := uc.Execute(ctx, WatchSummaryInput{HouseholdID: householdID, MonthKey: monthKey})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		awaitSnapshot(t, snapshots)

		cancel()

		select {
		case _, open := <-snapshots:
			if open {
				// A buffered snapshot may still drain; the next read must
				// observe the close.
				if _, stillOpen := <-snapshots; stillOpen {
					t.Error("expected channel to close after cancel")
				}
			}
		case <-time.After(2 * time.Second):
			t.Error("timed out waiting for channel close")
		}
	})

	t.Run("invalid month key fails fast", func(t *testing.T) {
		store := newFakeStore()
		uc := NewWatchSummaryUseCase(store, store, store.transactionsHub, store.settingsHub)

		_, err := uc.Execute(context.Background(), WatchSummaryInput{HouseholdID: householdID, MonthKey: "bogus"})
		if err == nil {
			t.Error("expected an error for an invalid month key")
		}
	})
}
