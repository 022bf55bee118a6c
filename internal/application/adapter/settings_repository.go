// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/jinofin/backend/internal/domain/entity"
)

// SettingsRepository is the store boundary for the per-household settings
// document. Partial-merge semantics live in the save use case: it reads the
// current document, overlays the provided fields, and writes the result.
type SettingsRepository interface {
	// Get retrieves the settings document for a household. Returns
	// domain ErrSettingsNotFound when none exists yet.
	Get(ctx context.Context, householdID uuid.UUID) (*entity.HouseholdSettings, error)

	// Upsert writes the full settings document for a household.
	Upsert(ctx context.Context, settings *entity.HouseholdSettings) error
}
