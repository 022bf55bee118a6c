// Package settings contains household settings use cases.
package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jinofin/backend/internal/application/adapter"
	"github.com/jinofin/backend/internal/domain/entity"
	domainerror "github.com/jinofin/backend/internal/domain/error"
)

// SaveSettingsInput carries a partial settings update: only non-nil fields
// overwrite the stored document.
type SaveSettingsInput struct {
	HouseholdID     uuid.UUID
	Currency        *string
	TotalBudget     *decimal.Decimal
	Categories      *[]string
	CategoryBudgets *map[string]decimal.Decimal
}

// SaveSettingsOutput represents the settings after the merge.
type SaveSettingsOutput struct {
	Settings *entity.HouseholdSettings
}

// SaveSettingsUseCase applies a partial-merge write to the settings document.
type SaveSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewSaveSettingsUseCase creates a new SaveSettingsUseCase instance.
func NewSaveSettingsUseCase(settingsRepo adapter.SettingsRepository) *SaveSettingsUseCase {
	return &SaveSettingsUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute validates the provided fields, merges them over the current
// document, and writes the result.
func (uc *SaveSettingsUseCase) Execute(ctx context.Context, input SaveSettingsInput) (*SaveSettingsOutput, error) {
	if err := uc.validate(input); err != nil {
		return nil, err
	}

	current, err := uc.settingsRepo.Get(ctx, input.HouseholdID)
	if err != nil {
		if !errors.Is(err, domainerror.ErrSettingsNotFound) {
			return nil, fmt.Errorf("failed to read settings: %w", err)
		}
		current = entity.NewHouseholdSettings(input.HouseholdID)
	}

	if input.Currency != nil {
		current.Currency = strings.ToUpper(strings.TrimSpace(*input.Currency))
	}
	if input.TotalBudget != nil {
		current.TotalBudget = *input.TotalBudget
	}
	if input.Categories != nil {
		categories := make([]string, 0, len(*input.Categories))
		for _, c := range *input.Categories {
			categories = append(categories, strings.TrimSpace(c))
		}
		current.Categories = categories
	}
	if input.CategoryBudgets != nil {
		budgets := make(map[string]decimal.Decimal, len(*input.CategoryBudgets))
		for name, limit := range *input.CategoryBudgets {
			budgets[strings.TrimSpace(name)] = limit
		}
		current.CategoryBudgets = budgets
	}
	current.UpdatedAt = time.Now().UTC()

	if err := uc.settingsRepo.Upsert(ctx, current); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	return &SaveSettingsOutput{Settings: current}, nil
}

func (uc *SaveSettingsUseCase) validate(input SaveSettingsInput) error {
	if input.Currency != nil {
		code := strings.TrimSpace(*input.Currency)
		if len(code) != 3 {
			return domainerror.NewSettingsError(
				domainerror.ErrCodeInvalidCurrency,
				"currency must be a three-letter ISO code",
				domainerror.ErrInvalidCurrency,
			)
		}
	}

	if input.TotalBudget != nil && input.TotalBudget.IsNegative() {
		return domainerror.NewSettingsError(
			domainerror.ErrCodeNegativeBudget,
			"total budget must not be negative",
			domainerror.ErrNegativeBudget,
		)
	}

	if input.Categories != nil {
		for _, c := range *input.Categories {
			if strings.TrimSpace(c) == "" {
				return domainerror.NewSettingsError(
					domainerror.ErrCodeEmptyCategoryName,
					"category name must not be empty",
					domainerror.ErrEmptyCategoryName,
				)
			}
		}
	}

	if input.CategoryBudgets != nil {
		for name, limit := range *input.CategoryBudgets {
			if strings.TrimSpace(name) == "" {
				return domainerror.NewSettingsError(
					domainerror.ErrCodeEmptyCategoryName,
					"category name must not be empty",
					domainerror.ErrEmptyCategoryName,
				)
			}
			if limit.IsNegative() {
				return domainerror.NewSettingsError(
					domainerror.ErrCodeNegativeBudget,
					"budget limit must not be negative",
					domainerror.ErrNegativeBudget,
				)
			}
		}
	}

	return nil
}
