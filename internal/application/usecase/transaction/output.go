// Package transaction contains transaction-related use cases.
package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jinofin/backend/internal/domain/entity"
)

// TransactionOutput is the use-case level representation of a transaction.
type TransactionOutput struct {
	ID          uuid.UUID
	HouseholdID uuid.UUID
	Type        entity.TransactionType
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	Note        string
	CreatedAt   time.Time
}

func toOutput(txn *entity.Transaction) *TransactionOutput {
	return &TransactionOutput{
		ID:          txn.ID,
		HouseholdID: txn.HouseholdID,
		Type:        txn.Type,
		Amount:      txn.Amount,
		Category:    txn.Category,
		Date:        txn.Date,
		Note:        txn.Note,
		CreatedAt:   txn.CreatedAt,
	}
}
