// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jinofin/backend/internal/application/adapter"
	"github.com/jinofin/backend/internal/application/usecase/aggregate"
	"github.com/jinofin/backend/internal/application/usecase/budget"
	"github.com/jinofin/backend/internal/application/usecase/period"
	"github.com/jinofin/backend/internal/domain/entity"
	domainerror "github.com/jinofin/backend/internal/domain/error"
)

// DefaultTrailingMonths is the chart window fetched when none is requested.
const DefaultTrailingMonths = 6

// GetSummaryInput represents the input for the dashboard summary.
type GetSummaryInput struct {
	HouseholdID uuid.UUID
	MonthKey    string // Defaults to the current month.
	Months      int    // Trailing window length; defaults to DefaultTrailingMonths.
}

// CategoryShareItem is one category's expense total with its share of all
// expenses in the window.
type CategoryShareItem struct {
	Category   string
	Amount     decimal.Decimal
	Percentage float64
}

// GetSummaryOutput represents the dashboard summary for one selected month
// over a trailing multi-month window.
type GetSummaryOutput struct {
	MonthKey    string
	Window      period.Range
	Summary     aggregate.Summary
	Categories  []CategoryShareItem // Alphabetical, expenses only.
	LeftToSpend []budget.Projection
	Currency    string
}

// GetSummaryUseCase computes the dashboard aggregate on demand.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	settingsRepo    adapter.SettingsRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	settingsRepo adapter.SettingsRepository,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
		settingsRepo:    settingsRepo,
	}
}

// Execute fetches one trailing window and answers both the multi-month chart
// and the selected month's questions from that single snapshot.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	monthKey := input.MonthKey
	if monthKey == "" {
		monthKey = period.MonthKey(time.Now())
	}
	months := input.Months
	if months <= 0 {
		months = DefaultTrailingMonths
	}

	monthWindow, err := period.MonthRange(monthKey, time.Local)
	if err != nil {
		return nil, err
	}
	window, err := period.TrailingMonths(months, monthWindow.End)
	if err != nil {
		return nil, err
	}

	records, err := uc.transactionRepo.FindByWindow(ctx, input.HouseholdID, window, adapter.TransactionFilter{})
	if err != nil {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeDashboardStoreFailure,
			"failed to load transactions",
			err,
		)
	}

	settings, err := uc.settingsRepo.Get(ctx, input.HouseholdID)
	if err != nil {
		if !errors.Is(err, domainerror.ErrSettingsNotFound) {
			return nil, fmt.Errorf("failed to read settings: %w", err)
		}
		settings = entity.NewHouseholdSettings(input.HouseholdID)
	}

	summary := aggregate.Compute(records, monthKey)

	categories := make([]CategoryShareItem, 0, len(summary.TotalsByCategory.ByCategory))
	for name, total := range summary.TotalsByCategory.ByCategory {
		categories = append(categories, CategoryShareItem{
			Category:   name,
			Amount:     total,
			Percentage: aggregate.Percentage(total, summary.TotalsByCategory.ExpenseTotal),
		})
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Category < categories[j].Category
	})

	return &GetSummaryOutput{
		MonthKey:    monthKey,
		Window:      window,
		Summary:     summary,
		Categories:  categories,
		LeftToSpend: budget.LeftToSpend(summary.CategorySpendThisMonth, settings),
		Currency:    settings.Currency,
	}, nil
}
