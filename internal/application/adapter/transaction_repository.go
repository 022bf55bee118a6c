// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/jinofin/backend/internal/application/usecase/period"
	"github.com/jinofin/backend/internal/domain/entity"
)

// TransactionFilter defines the filters a record subscription supports:
// range filters on date (the window), equality filters on type and category.
type TransactionFilter struct {
	Type     *entity.TransactionType
	Category string
}

// TransactionRepository is the record-store boundary for transactions. Every
// read returns a full, self-consistent snapshot ordered by date descending
// with store insertion order breaking ties.
type TransactionRepository interface {
	// Create persists a new transaction and assigns it to the household scope.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByWindow retrieves the household's transactions inside the window,
	// optionally filtered, ordered by date descending.
	FindByWindow(ctx context.Context, householdID uuid.UUID, window period.Range, filter TransactionFilter) ([]*entity.Transaction, error)

	// Delete removes a transaction immediately. Undo is a separate re-create,
	// not a rollback.
	Delete(ctx context.Context, id uuid.UUID, householdID uuid.UUID) error

	// BatchCreate persists all transactions atomically: either every record
	// is written or none are.
	BatchCreate(ctx context.Context, transactions []*entity.Transaction) error
}
