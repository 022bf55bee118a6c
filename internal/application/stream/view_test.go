package stream

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jinofin/backend/internal/domain/entity"
)

func record(amount string, date time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:       uuid.New(),
		Type:     entity.TransactionTypeExpense,
		Amount:   decimal.RequireFromString(amount),
		Category: "Food",
		Date:     date,
	}
}

func TestDashboardView(t *testing.T) {
	march := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	t.Run("not ready before first records snapshot", func(t *testing.T) {
		view := NewDashboardView("2024-03")

		if view.Snapshot().Ready {
			t.Error("expected Ready false before any records arrive")
		}
	})

	t.Run("records then settings", func(t *testing.T) {
		view := NewDashboardView("2024-03")
		recordsTicket := view.RecordsTicket()
		settingsTicket := view.SettingsTicket()

		if !view.OnRecords(recordsTicket, []*entity.Transaction{record("80", march)}) {
			t.Fatal("expected records snapshot to be admitted")
		}

		settings := entity.NewHouseholdSettings(uuid.New())
		settings.CategoryBudgets["Food"] = decimal.RequireFromString("100")
		if !view.OnSettings(settingsTicket, settings) {
			t.Fatal("expected settings snapshot to be admitted")
		}

		snapshot := view.Snapshot()
		if !snapshot.Ready {
			t.Error("expected Ready true")
		}
		if snapshot.Summary.TotalsByType.Expense.String() != "80" {
			t.Errorf("expected expense 80, got %s", snapshot.Summary.TotalsByType.Expense)
		}
		if len(snapshot.LeftToSpend) != 1 || snapshot.LeftToSpend[0].Remaining.String() != "20" {
			t.Errorf("expected Food remaining 20, got %v", snapshot.LeftToSpend)
		}
	})

	t.Run("settings before records", func(t *testing.T) {
		view := NewDashboardView("2024-03")
		recordsTicket := view.RecordsTicket()
		settingsTicket := view.SettingsTicket()

		settings := entity.NewHouseholdSettings(uuid.New())
		settings.CategoryBudgets["Food"] = decimal.RequireFromString("100")
		view.OnSettings(settingsTicket, settings)

		snapshot := view.Snapshot()
		if snapshot.Ready {
			t.Error("expected Ready false with settings but no records")
		}
		if len(snapshot.LeftToSpend) != 1 || snapshot.LeftToSpend[0].Remaining.String() != "100" {
			t.Errorf("expected untouched Food budget, got %v", snapshot.LeftToSpend)
		}

		view.OnRecords(recordsTicket, []*entity.Transaction{record("30", march)})

		snapshot = view.Snapshot()
		if !snapshot.Ready {
			t.Error("expected Ready true after records")
		}
		if snapshot.LeftToSpend[0].Remaining.String() != "70" {
			t.Errorf("expected remaining 70, got %s", snapshot.LeftToSpend[0].Remaining)
		}
	})

	t.Run("month switch rejects stale records snapshot", func(t *testing.T) {
		view := NewDashboardView("2024-03")
		staleTicket := view.RecordsTicket()

		freshTicket := view.SelectMonth("2024-04")

		// The old subscription's snapshot lands after the switch; it must
		// not overwrite the new month's state.
		if view.OnRecords(staleTicket, []*entity.Transaction{record("999", march)}) {
			t.Error("expected stale snapshot to be rejected")
		}
		if view.Snapshot().Summary.TotalsByType.Expense.String() != "0" {
			t.Error("expected rejected snapshot to leave state untouched")
		}

		april := time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC)
		if !view.OnRecords(freshTicket, []*entity.Transaction{record("10", april)}) {
			t.Fatal("expected fresh snapshot to be admitted")
		}

		snapshot := view.Snapshot()
		if snapshot.MonthKey != "2024-04" {
			t.Errorf("expected month 2024-04, got %s", snapshot.MonthKey)
		}
		if snapshot.Summary.TotalsByType.Expense.String() != "10" {
			t.Errorf("expected expense 10, got %s", snapshot.Summary.TotalsByType.Expense)
		}
	})

	t.Run("pending amount feeds entry projection", func(t *testing.T) {
		view := NewDashboardView("2024-03")
		recordsTicket := view.RecordsTicket()
		settingsTicket := view.SettingsTicket()

		settings := entity.NewHouseholdSettings(uuid.New())
		settings.CategoryBudgets["Food"] = decimal.RequireFromString("100")
		view.OnSettings(settingsTicket, settings)
		view.OnRecords(recordsTicket, []*entity.Transaction{record("80", march)})

		view.SetPending("Food", decimal.RequireFromString("30"))

		snapshot := view.Snapshot()
		if snapshot.Entry.Remaining.String() != "-10" {
			t.Errorf("expected entry remaining -10, got %s", snapshot.Entry.Remaining)
		}
		if snapshot.Entry.Label != "-10.00 EUR left this month for Food" {
			t.Errorf("unexpected entry label %q", snapshot.Entry.Label)
		}

		// Clearing the pending text restores the plain remaining figure.
		view.SetPending("Food", decimal.Zero)
		if got := view.Snapshot().Entry.Remaining.String(); got != "20" {
			t.Errorf("expected entry remaining 20, got %s", got)
		}
	})
}
