// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// IsValid reports whether the transaction type is one of the known values.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// Transaction represents a single money movement recorded by a household.
// Transactions are immutable once saved: they are created by the entry form
// or a CSV import and removed only by explicit deletion.
type Transaction struct {
	ID          uuid.UUID
	HouseholdID uuid.UUID
	Type        TransactionType
	Amount      decimal.Decimal // Always positive; the type carries the sign.
	Category    string          // Free label, not constrained to the category list.
	Date        time.Time       // User-chosen instant, independent of CreatedAt.
	Note        string
	CreatedAt   time.Time // Provenance only, never used for ordering or filtering.
}

// NewTransaction creates a new Transaction entity scoped to a household.
func NewTransaction(
	householdID uuid.UUID,
	transactionType TransactionType,
	amount decimal.Decimal,
	category string,
	date time.Time,
	note string,
) *Transaction {
	return &Transaction{
		ID:          uuid.New(),
		HouseholdID: householdID,
		Type:        transactionType,
		Amount:      amount,
		Category:    category,
		Date:        date,
		Note:        note,
		CreatedAt:   time.Now().UTC(),
	}
}

// TransactionListResult represents the result of listing transactions.
type TransactionListResult struct {
	Transactions []*Transaction
	Total        int64
}
