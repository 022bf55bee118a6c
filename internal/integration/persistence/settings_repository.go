// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jinofin/backend/internal/application/adapter"
	"github.com/jinofin/backend/internal/application/stream"
	"github.com/jinofin/backend/internal/domain/entity"
	domainerror "github.com/jinofin/backend/internal/domain/error"
	"github.com/jinofin/backend/internal/integration/persistence/model"
)

// settingsRepository implements the adapter.SettingsRepository interface.
type settingsRepository struct {
	db  *gorm.DB
	hub *stream.Hub
}

// NewSettingsRepository creates a new settings repository instance.
func NewSettingsRepository(db *gorm.DB, hub *stream.Hub) adapter.SettingsRepository {
	return &settingsRepository{
		db:  db,
		hub: hub,
	}
}

// Get retrieves the settings document for a household.
func (r *settingsRepository) Get(ctx context.Context, householdID uuid.UUID) (*entity.HouseholdSettings, error) {
	var settingsModel model.SettingsModel
	result := r.db.WithContext(ctx).Where("household_id = ?", householdID).First(&settingsModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSettingsNotFound
		}
		return nil, result.Error
	}
	return settingsModel.ToEntity(), nil
}

// Upsert writes the full settings document for a household.
func (r *settingsRepository) Upsert(ctx context.Context, settings *entity.HouseholdSettings) error {
	settingsModel := model.SettingsFromEntity(settings)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "household_id"}},
			UpdateAll: true,
		}).
		Create(settingsModel)
	if result.Error != nil {
		return result.Error
	}
	r.hub.Notify(settings.HouseholdID)
	return nil
}
