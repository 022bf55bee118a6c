// Package adapters implements integration services consumed by use cases.
package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/jinofin/backend/internal/application/adapter"
	"github.com/jinofin/backend/internal/domain/entity"
	domainerror "github.com/jinofin/backend/internal/domain/error"
)

const undoKeyPrefix = "undo:txn:"

// stashedTransaction is the redis JSON shape of a deleted transaction.
type stashedTransaction struct {
	ID          uuid.UUID       `json:"id"`
	HouseholdID uuid.UUID       `json:"household_id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	Note        string          `json:"note"`
	CreatedAt   time.Time       `json:"created_at"`
}

// undoStash keeps deleted transactions in redis for the undo window.
type undoStash struct {
	client *redis.Client
}

// NewUndoStash creates a redis-backed undo stash.
func NewUndoStash(client *redis.Client) adapter.UndoStash {
	return &undoStash{client: client}
}

// Stash stores the deleted transaction under its ID with the given TTL.
func (s *undoStash) Stash(ctx context.Context, transaction *entity.Transaction, ttl time.Duration) error {
	payload, err := json.Marshal(stashedTransaction{
		ID:          transaction.ID,
		HouseholdID: transaction.HouseholdID,
		Type:        string(transaction.Type),
		Amount:      transaction.Amount,
		Category:    transaction.Category,
		Date:        transaction.Date,
		Note:        transaction.Note,
		CreatedAt:   transaction.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to encode stashed transaction: %w", err)
	}

	return s.client.Set(ctx, undoKeyPrefix+transaction.ID.String(), payload, ttl).Err()
}

// Take removes and returns the stashed transaction, or ErrUndoExpired when
// the window has passed.
func (s *undoStash) Take(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	payload, err := s.client.GetDel(ctx, undoKeyPrefix+id.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainerror.ErrUndoExpired
		}
		return nil, err
	}

	var stashed stashedTransaction
	if err := json.Unmarshal(payload, &stashed); err != nil {
		return nil, fmt.Errorf("failed to decode stashed transaction: %w", err)
	}

	return &entity.Transaction{
		ID:          stashed.ID,
		HouseholdID: stashed.HouseholdID,
		Type:        entity.TransactionType(stashed.Type),
		Amount:      stashed.Amount,
		Category:    stashed.Category,
		Date:        stashed.Date,
		Note:        stashed.Note,
		CreatedAt:   stashed.CreatedAt,
	}, nil
}
