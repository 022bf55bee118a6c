// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jinofin/backend/internal/application/adapter"
	"github.com/jinofin/backend/internal/application/stream"
	"github.com/jinofin/backend/internal/application/usecase/period"
	domainerror "github.com/jinofin/backend/internal/domain/error"
)

// WatchSummaryInput represents the input for a live dashboard subscription.
type WatchSummaryInput struct {
	HouseholdID uuid.UUID
	MonthKey    string
	Months      int
}

// WatchSummaryUseCase maintains a live dashboard view over the transaction
// and settings streams. Each store write re-queries a full snapshot and
// recomputes; the consumer receives complete ViewSnapshots, never deltas.
type WatchSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	settingsRepo    adapter.SettingsRepository
	transactionsHub *stream.Hub
	settingsHub     *stream.Hub
}

// NewWatchSummaryUseCase creates a new WatchSummaryUseCase instance.
func NewWatchSummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	settingsRepo adapter.SettingsRepository,
	transactionsHub *stream.Hub,
	settingsHub *stream.Hub,
) *WatchSummaryUseCase {
	return &WatchSummaryUseCase{
		transactionRepo: transactionRepo,
		settingsRepo:    settingsRepo,
		transactionsHub: transactionsHub,
		settingsHub:     settingsHub,
	}
}

// Execute starts the subscription. The returned channel delivers a snapshot
// after the initial load and after every subsequent change, until ctx is
// done. The two underlying streams are independent; the view recomputes when
// either updates and tolerates either arriving first.
func (uc *WatchSummaryUseCase) Execute(ctx context.Context, input WatchSummaryInput) (<-chan stream.ViewSnapshot, error) {
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

	view := stream.NewDashboardView(monthKey)
	recordsTicket := view.RecordsTicket()
	settingsTicket := view.SettingsTicket()

	txSignals, cancelTx := uc.transactionsHub.Subscribe(ctx, input.HouseholdID)
	setSignals, cancelSet := uc.settingsHub.Subscribe(ctx, input.HouseholdID)

	out := make(chan stream.ViewSnapshot, 1)

	emit := func() {
		snapshot := view.Snapshot()
		select {
		case out <- snapshot:
		case <-ctx.Done():
		}
	}

	refreshRecords := func() bool {
		records, err := uc.transactionRepo.FindByWindow(ctx, input.HouseholdID, window, adapter.TransactionFilter{})
		if err != nil {
			slog.Warn("Failed to refresh dashboard records snapshot",
				"householdID", input.HouseholdID,
				"error", err,
			)
			return false
		}
		return view.OnRecords(recordsTicket, records)
	}

	refreshSettings := func() bool {
		settings, err := uc.settingsRepo.Get(ctx, input.HouseholdID)
		if err != nil {
			if !errors.Is(err, domainerror.ErrSettingsNotFound) {
				slog.Warn("Failed to refresh dashboard settings snapshot",
					"householdID", input.HouseholdID,
					"error", err,
				)
			}
			return false
		}
		return view.OnSettings(settingsTicket, settings)
	}

	go func() {
		defer close(out)
		defer cancelTx()
		defer cancelSet()

		refreshSettings()
		refreshRecords()
		emit()

		for {
			select {
			case <-ctx.Done():
				return
			case <-txSignals:
				if refreshRecords() {
					emit()
				}
			case <-setSignals:
				if refreshSettings() {
					emit()
				}
			}
		}
	}()

	return out, nil
}
