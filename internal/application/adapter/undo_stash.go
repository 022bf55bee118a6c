// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jinofin/backend/internal/domain/entity"
)

// UndoStash keeps recently deleted transactions for a bounded window so the
// undo affordance can re-create them with the same identifier. Delete and
// undo are two independent writes; a concurrent reader may observe the brief
// absence.
type UndoStash interface {
	// Stash stores a deleted transaction under its ID for the given TTL.
	Stash(ctx context.Context, transaction *entity.Transaction, ttl time.Duration) error

	// Take removes and returns a stashed transaction. Returns domain
	// ErrUndoExpired when the window has passed or nothing was stashed.
	Take(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
}
