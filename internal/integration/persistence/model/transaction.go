// Package model defines database models for the persistence layer.
package model

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jinofin/backend/internal/domain/entity"
)

// seqCounter seeds insertion sequence numbers. Seeding with the current
// nanosecond keeps values increasing across process restarts, which the
// unique index on seq requires.
var seqCounter atomic.Int64

func init() {
	seqCounter.Store(time.Now().UnixNano())
}

func nextSeq() int64 {
	return seqCounter.Add(1)
}

// TransactionModel represents the transactions table in the database.
// seq is an insertion counter assigned at write time; equal dates keep insertion
// order, which is the only tie-break the list ordering imposes.
type TransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	HouseholdID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type        string          `gorm:"type:varchar(10);not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Category    string          `gorm:"type:varchar(120);not null;index"`
	Date        time.Time       `gorm:"not null;index"`
	Note        string          `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"not null"`
	Seq         int64           `gorm:"not null;uniqueIndex"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		HouseholdID: m.HouseholdID,
		Type:        entity.TransactionType(m.Type),
		Amount:      m.Amount,
		Category:    m.Category,
		Date:        m.Date,
		Note:        m.Note,
		CreatedAt:   m.CreatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          transaction.ID,
		HouseholdID: transaction.HouseholdID,
		Type:        string(transaction.Type),
		Amount:      transaction.Amount,
		Category:    transaction.Category,
		Date:        transaction.Date,
		Note:        transaction.Note,
		CreatedAt:   transaction.CreatedAt,
		Seq:         nextSeq(),
	}
}
