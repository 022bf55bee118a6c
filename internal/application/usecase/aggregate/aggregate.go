// Package aggregate computes month- and category-scoped spend/income
// aggregates over a time-bounded transaction snapshot.
//
// Every function here is pure with respect to its input set: re-running on
// the same snapshot yields identical output, which is what lets consumers
// recompute from full snapshots instead of patching state incrementally.
package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jinofin/backend/internal/application/usecase/period"
	"github.com/jinofin/backend/internal/domain/entity"
)

// TypeTotals holds the per-type amount sums across the whole set, unfiltered
// by category.
type TypeTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// CategoryTotals maps category to the sum of expense amounts only; income is
// excluded from the category breakdown. ExpenseTotal is the grand total of
// all expense amounts in the set and serves as the percentage denominator.
type CategoryTotals struct {
	ByCategory   map[string]decimal.Decimal
	ExpenseTotal decimal.Decimal
}

// MonthBucket holds the income/expense sums of one calendar month. Buckets
// exist only for months with at least one record.
type MonthBucket struct {
	Month   string // YYYY-MM key.
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Summary is the full aggregate for one snapshot and one selected month.
type Summary struct {
	TotalsByType     TypeTotals
	TotalsByCategory CategoryTotals
	MonthlySeries    []MonthBucket
	// CategorySpendThisMonth restricts expense sums to the selected month,
	// independent of the broader window the snapshot was fetched for.
	CategorySpendThisMonth map[string]decimal.Decimal
}

// Compute aggregates a time-bounded snapshot. The window selection is the
// caller's responsibility; records are bucketed by their own date's calendar
// month, not by the window boundaries. monthKey selects the single month for
// CategorySpendThisMonth.
func Compute(records []*entity.Transaction, monthKey string) Summary {
	summary := Summary{
		TotalsByType: TypeTotals{Income: decimal.Zero, Expense: decimal.Zero},
		TotalsByCategory: CategoryTotals{
			ByCategory:   make(map[string]decimal.Decimal),
			ExpenseTotal: decimal.Zero,
		},
		CategorySpendThisMonth: make(map[string]decimal.Decimal),
	}

	buckets := make(map[string]*MonthBucket)

	for _, txn := range records {
		key := period.MonthKey(txn.Date)
		bucket, ok := buckets[key]
		if !ok {
			bucket = &MonthBucket{Month: key, Income: decimal.Zero, Expense: decimal.Zero}
			buckets[key] = bucket
		}

		switch txn.Type {
		case entity.TransactionTypeIncome:
			summary.TotalsByType.Income = summary.TotalsByType.Income.Add(txn.Amount)
			bucket.Income = bucket.Income.Add(txn.Amount)
		case entity.TransactionTypeExpense:
			summary.TotalsByType.Expense = summary.TotalsByType.Expense.Add(txn.Amount)
			bucket.Expense = bucket.Expense.Add(txn.Amount)

			current, ok := summary.TotalsByCategory.ByCategory[txn.Category]
			if !ok {
				current = decimal.Zero
			}
			summary.TotalsByCategory.ByCategory[txn.Category] = current.Add(txn.Amount)
			summary.TotalsByCategory.ExpenseTotal = summary.TotalsByCategory.ExpenseTotal.Add(txn.Amount)

			if key == monthKey {
				spent, ok := summary.CategorySpendThisMonth[txn.Category]
				if !ok {
					spent = decimal.Zero
				}
				summary.CategorySpendThisMonth[txn.Category] = spent.Add(txn.Amount)
			}
		}
	}

	summary.MonthlySeries = make([]MonthBucket, 0, len(buckets))
	for _, bucket := range buckets {
		summary.MonthlySeries = append(summary.MonthlySeries, *bucket)
	}
	// Lexicographic order on YYYY-MM keys is chronological order.
	sort.Slice(summary.MonthlySeries, func(i, j int) bool {
		return summary.MonthlySeries[i].Month < summary.MonthlySeries[j].Month
	})

	return summary
}

// Percentage returns part as a percentage of total, rounded to two decimals.
// A zero total reports 0 rather than dividing by zero.
func Percentage(part, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	pct, _ := part.Mul(decimal.NewFromInt(100)).Div(total).Round(2).Float64()
	return pct
}

// Sorted returns a copy of records ordered by date descending. Equal dates
// keep the store's insertion order; no secondary sort key is imposed.
func Sorted(records []*entity.Transaction) []*entity.Transaction {
	out := make([]*entity.Transaction, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}
