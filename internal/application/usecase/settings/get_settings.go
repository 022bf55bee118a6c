// Package settings contains household settings use cases.
package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jinofin/backend/internal/application/adapter"
	"github.com/jinofin/backend/internal/domain/entity"
	domainerror "github.com/jinofin/backend/internal/domain/error"
)

// GetSettingsInput represents the input for reading household settings.
type GetSettingsInput struct {
	HouseholdID uuid.UUID
}

// GetSettingsOutput represents the household settings document.
type GetSettingsOutput struct {
	Settings *entity.HouseholdSettings
}

// GetSettingsUseCase reads the household settings document, creating the
// account-setup defaults on first read.
type GetSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase instance.
func NewGetSettingsUseCase(settingsRepo adapter.SettingsRepository) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute retrieves the settings, initializing defaults when none exist.
func (uc *GetSettingsUseCase) Execute(ctx context.Context, input GetSettingsInput) (*GetSettingsOutput, error) {
	current, err := uc.settingsRepo.Get(ctx, input.HouseholdID)
	if err == nil {
		return &GetSettingsOutput{Settings: current}, nil
	}
	if !errors.Is(err, domainerror.ErrSettingsNotFound) {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	defaults := entity.NewHouseholdSettings(input.HouseholdID)
	if err := uc.settingsRepo.Upsert(ctx, defaults); err != nil {
		return nil, fmt.Errorf("failed to initialize settings: %w", err)
	}
	return &GetSettingsOutput{Settings: defaults}, nil
}
