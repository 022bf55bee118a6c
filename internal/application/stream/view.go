package stream

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jinofin/backend/internal/application/usecase/aggregate"
	"github.com/jinofin/backend/internal/application/usecase/budget"
	"github.com/jinofin/backend/internal/domain/entity"
)

// ViewSnapshot is one self-consistent recomputation of the dashboard state.
type ViewSnapshot struct {
	MonthKey    string
	Summary     aggregate.Summary
	LeftToSpend []budget.Projection
	Entry       budget.Projection // Projection for the entry form's selected category.
	Ready       bool              // False until the records stream has delivered once.
}

// DashboardView combines the transactions-in-range stream and the
// budget-settings stream into the aggregate the presentation layer renders.
// The two streams are independent; the view tolerates either arriving first
// and recomputes synchronously whenever either updates, or when the selected
// month, selected category, or pending amount changes. Each recomputation
// runs from the latest full snapshots; superseded state is discarded, never
// patched.
//
// The zero view is not usable; construct with NewDashboardView.
type DashboardView struct {
	recordsGate  Gate
	settingsGate Gate

	mu            sync.Mutex
	monthKey      string
	pending       decimal.Decimal
	entryCategory string
	records       []*entity.Transaction
	settings      *entity.HouseholdSettings
	recordsReady  bool

	snapshot ViewSnapshot
}

// NewDashboardView creates a view for the given selected month.
func NewDashboardView(monthKey string) *DashboardView {
	v := &DashboardView{
		monthKey: monthKey,
		pending:  decimal.Zero,
		settings: entity.NewHouseholdSettings(uuid.Nil),
	}
	v.recompute()
	return v
}

// SelectMonth switches the selected month and returns the ticket the caller
// must attach to the replacement records subscription. Snapshots delivered
// under earlier tickets are rejected by OnRecords.
func (v *DashboardView) SelectMonth(monthKey string) Ticket {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.monthKey = monthKey
	v.recordsReady = false
	v.recompute()
	return v.recordsGate.Next()
}

// RecordsTicket issues a ticket for the initial records subscription.
func (v *DashboardView) RecordsTicket() Ticket {
	return v.recordsGate.Next()
}

// SettingsTicket issues a ticket for the settings subscription.
func (v *DashboardView) SettingsTicket() Ticket {
	return v.settingsGate.Next()
}

// OnRecords applies a full records snapshot delivered under ticket t. It
// reports whether the snapshot was admitted; a stale ticket leaves the view
// untouched (last-subscription-wins, not last-callback-wins).
func (v *DashboardView) OnRecords(t Ticket, snapshot []*entity.Transaction) bool {
	if !v.recordsGate.Admit(t) {
		return false
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.records = snapshot
	v.recordsReady = true
	v.recompute()
	return true
}

// OnSettings applies a settings snapshot delivered under ticket t.
func (v *DashboardView) OnSettings(t Ticket, settings *entity.HouseholdSettings) bool {
	if !v.settingsGate.Admit(t) {
		return false
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if settings != nil {
		v.settings = settings
	}
	v.recompute()
	return true
}

// SetPending updates the entry form's selected category and the amount
// currently being typed. The remaining figure is recomputed before this
// method returns, so no stale value can be rendered afterwards.
func (v *DashboardView) SetPending(category string, pending decimal.Decimal) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.entryCategory = category
	v.pending = pending
	v.recompute()
}

// Snapshot returns the latest recomputed view state.
func (v *DashboardView) Snapshot() ViewSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshot
}

// recompute rebuilds the snapshot from the latest inputs. Callers hold the
// lock, except the constructor.
func (v *DashboardView) recompute() {
	summary := aggregate.Compute(v.records, v.monthKey)

	snapshot := ViewSnapshot{
		MonthKey:    v.monthKey,
		Summary:     summary,
		LeftToSpend: budget.LeftToSpend(summary.CategorySpendThisMonth, v.settings),
		Ready:       v.recordsReady,
	}
	if v.entryCategory != "" {
		snapshot.Entry = budget.Project(summary.CategorySpendThisMonth, v.settings, v.entryCategory, v.pending)
	}
	v.snapshot = snapshot
}
