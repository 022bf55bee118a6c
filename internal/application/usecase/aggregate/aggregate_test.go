package aggregate

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jinofin/backend/internal/domain/entity"
)

func txn(txnType entity.TransactionType, amount, category string, date time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:       uuid.New(),
		Type:     txnType,
		Amount:   decimal.RequireFromString(amount),
		Category: category,
		Date:     date,
	}
}

func TestCompute(t *testing.T) {
	march := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	february := time.Date(2024, time.February, 20, 12, 0, 0, 0, time.UTC)

	t.Run("empty snapshot yields zero totals", func(t *testing.T) {
		summary := Compute(nil, "2024-03")

		if !summary.TotalsByType.Income.IsZero() || !summary.TotalsByType.Expense.IsZero() {
			t.Error("expected zero type totals")
		}
		if len(summary.TotalsByCategory.ByCategory) != 0 {
			t.Error("expected empty category breakdown")
		}
		if len(summary.MonthlySeries) != 0 {
			t.Error("expected no monthly buckets")
		}
		if len(summary.CategorySpendThisMonth) != 0 {
			t.Error("expected empty selected-month spend")
		}
	})

	t.Run("type totals span all categories", func(t *testing.T) {
		summary := Compute([]*entity.Transaction{
			txn(entity.TransactionTypeExpense, "10", "Food", march),
			txn(entity.TransactionTypeExpense, "20", "Transport", march),
			txn(entity.TransactionTypeIncome, "3000", "Salary", march),
		}, "2024-03")

		if summary.TotalsByType.Expense.String() != "30" {
			t.Errorf("expected expense total 30, got %s", summary.TotalsByType.Expense)
		}
		if summary.TotalsByType.Income.String() != "3000" {
			t.Errorf("expected income total 3000, got %s", summary.TotalsByType.Income)
		}
	})

	t.Run("category breakdown is expense only", func(t *testing.T) {
		summary := Compute([]*entity.Transaction{
			txn(entity.TransactionTypeExpense, "10", "Food", march),
			txn(entity.TransactionTypeExpense, "15", "Food", march),
			txn(entity.TransactionTypeIncome, "3000", "Food", march),
		}, "2024-03")

		if summary.TotalsByCategory.ByCategory["Food"].String() != "25" {
			t.Errorf("expected Food 25, got %s", summary.TotalsByCategory.ByCategory["Food"])
		}
		if summary.TotalsByCategory.ExpenseTotal.String() != "25" {
			t.Errorf("expected expense total 25, got %s", summary.TotalsByCategory.ExpenseTotal)
		}
	})

	t.Run("delisted category still aggregates", func(t *testing.T) {
		// Records keep their category name even when the household later
		// removes it from the settings list.
		summary := Compute([]*entity.Transaction{
			txn(entity.TransactionTypeExpense, "42", "OldHobby", march),
		}, "2024-03")

		if summary.TotalsByCategory.ByCategory["OldHobby"].String() != "42" {
			t.Errorf("expected OldHobby 42, got %s", summary.TotalsByCategory.ByCategory["OldHobby"])
		}
	})

	t.Run("buckets exist only for months with records", func(t *testing.T) {
		summary := Compute([]*entity.Transaction{
			txn(entity.TransactionTypeExpense, "10", "Food", march),
			txn(entity.TransactionTypeExpense, "5", "Food", time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)),
		}, "2024-03")

		if len(summary.MonthlySeries) != 2 {
			t.Fatalf("expected 2 buckets, got %d", len(summary.MonthlySeries))
		}
		if summary.MonthlySeries[0].Month != "2024-01" || summary.MonthlySeries[1].Month != "2024-03" {
			t.Errorf("expected chronological buckets, got %v", summary.MonthlySeries)
		}
	})

	t.Run("selected month spend excludes other months", func(t *testing.T) {
		summary := Compute([]*entity.Transaction{
			txn(entity.TransactionTypeExpense, "10", "Food", march),
			txn(entity.TransactionTypeExpense, "99", "Food", february),
		}, "2024-03")

		if summary.CategorySpendThisMonth["Food"].String() != "10" {
			t.Errorf("expected selected-month Food 10, got %s", summary.CategorySpendThisMonth["Food"])
		}
	})

	t.Run("recompute on same snapshot is identical", func(t *testing.T) {
		records := []*entity.Transaction{
			txn(entity.TransactionTypeExpense, "10", "Food", march),
			txn(entity.TransactionTypeIncome, "500", "Salary", february),
		}

		first := Compute(records, "2024-03")
		second := Compute(records, "2024-03")

		if !first.TotalsByType.Expense.Equal(second.TotalsByType.Expense) ||
			!first.TotalsByType.Income.Equal(second.TotalsByType.Income) {
			t.Error("expected identical totals on recompute")
		}
		if len(first.MonthlySeries) != len(second.MonthlySeries) {
			t.Error("expected identical series on recompute")
		}
	})
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name  string
		part  string
		total string
		want  float64
	}{
		{name: "half", part: "50", total: "100", want: 50},
		{name: "rounded to two decimals", part: "1", total: "3", want: 33.33},
		{name: "zero total", part: "10", total: "0", want: 0},
		{name: "full", part: "25", total: "25", want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentage(decimal.RequireFromString(tt.part), decimal.RequireFromString(tt.total))
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSorted(t *testing.T) {
	early := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)

	a := txn(entity.TransactionTypeExpense, "1", "Food", early)
	b := txn(entity.TransactionTypeExpense, "2", "Food", late)
	c := txn(entity.TransactionTypeExpense, "3", "Food", late)

	records := []*entity.Transaction{a, b, c}
	sorted := Sorted(records)

	if sorted[0] != b || sorted[1] != c || sorted[2] != a {
		t.Error("expected date-descending order with stable ties")
	}
	if records[0] != a {
		t.Error("expected input slice to be untouched")
	}
}
