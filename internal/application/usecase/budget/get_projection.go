package budget

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jinofin/backend/internal/application/adapter"
	"github.com/jinofin/backend/internal/application/usecase/aggregate"
	"github.com/jinofin/backend/internal/application/usecase/amount"
	"github.com/jinofin/backend/internal/application/usecase/period"
	"github.com/jinofin/backend/internal/domain/entity"
	domainerror "github.com/jinofin/backend/internal/domain/error"
)

// GetProjectionInput represents a remaining-budget query from the entry
// form. RawPending is the amount text currently being typed; text that does
// not parse to a number contributes zero, since nothing could be saved yet.
type GetProjectionInput struct {
	HouseholdID uuid.UUID
	Category    string
	RawPending  string
	MonthKey    string // Defaults to the current month.
}

// GetProjectionOutput represents the remaining-budget projection.
type GetProjectionOutput struct {
	Projection Projection
	Currency   string
}

// GetProjectionUseCase fetches the selected month's spend and projects the
// remaining budget for one category, including the pending amount.
type GetProjectionUseCase struct {
	transactionRepo adapter.TransactionRepository
	settingsRepo    adapter.SettingsRepository
}

// NewGetProjectionUseCase creates a new GetProjectionUseCase instance.
func NewGetProjectionUseCase(
	transactionRepo adapter.TransactionRepository,
	settingsRepo adapter.SettingsRepository,
) *GetProjectionUseCase {
	return &GetProjectionUseCase{
		transactionRepo: transactionRepo,
		settingsRepo:    settingsRepo,
	}
}

// Execute computes the projection.
func (uc *GetProjectionUseCase) Execute(ctx context.Context, input GetProjectionInput) (*GetProjectionOutput, error) {
	category := strings.TrimSpace(input.Category)
	if category == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingCategory,
			"category is required",
			domainerror.ErrMissingTransactionCategory,
		)
	}

	monthKey := input.MonthKey
	if monthKey == "" {
		monthKey = period.MonthKey(time.Now())
	}
	window, err := period.MonthRange(monthKey, time.Local)
	if err != nil {
		return nil, err
	}

	records, err := uc.transactionRepo.FindByWindow(ctx, input.HouseholdID, window, adapter.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	settings, err := uc.settingsRepo.Get(ctx, input.HouseholdID)
	if err != nil {
		if !errors.Is(err, domainerror.ErrSettingsNotFound) {
			return nil, fmt.Errorf("failed to read settings: %w", err)
		}
		settings = entity.NewHouseholdSettings(input.HouseholdID)
	}

	pending := decimal.Zero
	if parsed := amount.Parse(input.RawPending); parsed.IsNumber() {
		if d, ok := parsed.Decimal(); ok {
			pending = d
		}
	}

	summary := aggregate.Compute(records, monthKey)
	projection := Project(summary.CategorySpendThisMonth, settings, category, pending)

	return &GetProjectionOutput{
		Projection: projection,
		Currency:   settings.Currency,
	}, nil
}
