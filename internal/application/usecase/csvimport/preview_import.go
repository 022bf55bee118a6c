package csvimport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jinofin/backend/internal/application/adapter"
	"github.com/jinofin/backend/internal/domain/entity"
	domainerror "github.com/jinofin/backend/internal/domain/error"
)

// PreviewImportInput represents the input for previewing a CSV import.
type PreviewImportInput struct {
	HouseholdID uuid.UUID
	Rows        []map[string]string
}

// PreviewImportOutput represents the preview: every row, valid or not, plus
// the categories not yet on the household's list. Nothing is persisted.
type PreviewImportOutput struct {
	Rows          []NormalizedRow
	ValidCount    int
	InvalidCount  int
	NewCategories []string
}

// PreviewImportUseCase normalizes uploaded rows for user review.
type PreviewImportUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewPreviewImportUseCase creates a new PreviewImportUseCase instance.
func NewPreviewImportUseCase(settingsRepo adapter.SettingsRepository) *PreviewImportUseCase {
	return &PreviewImportUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute performs the import preview.
func (uc *PreviewImportUseCase) Execute(ctx context.Context, input PreviewImportInput) (*PreviewImportOutput, error) {
	if len(input.Rows) == 0 {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeEmptyImport,
			"at least one row is required",
			domainerror.ErrEmptyImport,
		)
	}

	known := entity.DefaultCategories
	current, err := uc.settingsRepo.Get(ctx, input.HouseholdID)
	if err == nil {
		known = current.Categories
	} else if !errors.Is(err, domainerror.ErrSettingsNotFound) {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	result := NormalizeRows(input.Rows, known, time.Local)

	output := &PreviewImportOutput{
		Rows:          result.Rows,
		NewCategories: result.NewCategories,
	}
	for _, row := range result.Rows {
		if row.Valid {
			output.ValidCount++
		} else {
			output.InvalidCount++
		}
	}
	return output, nil
}
