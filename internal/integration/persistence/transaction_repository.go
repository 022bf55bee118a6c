// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jinofin/backend/internal/application/adapter"
	"github.com/jinofin/backend/internal/application/stream"
	"github.com/jinofin/backend/internal/application/usecase/period"
	"github.com/jinofin/backend/internal/domain/entity"
	domainerror "github.com/jinofin/backend/internal/domain/error"
	"github.com/jinofin/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
// Every successful write notifies the transactions hub so live subscriptions
// re-query their snapshot.
type transactionRepository struct {
	db  *gorm.DB
	hub *stream.Hub
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB, hub *stream.Hub) adapter.TransactionRepository {
	return &transactionRepository{
		db:  db,
		hub: hub,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	if result := r.db.WithContext(ctx).Create(transactionModel); result.Error != nil {
		return result.Error
	}
	r.hub.Notify(transaction.HouseholdID)
	return nil
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByWindow retrieves the household's transactions inside the window,
// ordered by date descending with insertion order breaking ties.
func (r *transactionRepository) FindByWindow(
	ctx context.Context,
	householdID uuid.UUID,
	window period.Range,
	filter adapter.TransactionFilter,
) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).Model(&model.TransactionModel{}).
		Where("household_id = ?", householdID)

	if !window.Start.IsZero() {
		query = query.Where("date >= ?", window.Start)
	}
	if !window.End.IsZero() {
		query = query.Where("date <= ?", window.End)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var transactionModels []model.TransactionModel
	if result := query.Order("date DESC, seq ASC").Find(&transactionModels); result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions, nil
}

// Delete removes a transaction immediately.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID, householdID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND household_id = ?", id, householdID).
		Delete(&model.TransactionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	r.hub.Notify(householdID)
	return nil
}

// BatchCreate persists all transactions in a single database transaction:
// either every record is written or none are.
func (r *transactionRepository) BatchCreate(ctx context.Context, transactions []*entity.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	transactionModels := make([]*model.TransactionModel, len(transactions))
	for i, txn := range transactions {
		transactionModels[i] = model.TransactionFromEntity(txn)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&transactionModels).Error
	})
	if err != nil {
		return err
	}

	r.hub.Notify(transactions[0].HouseholdID)
	return nil
}
