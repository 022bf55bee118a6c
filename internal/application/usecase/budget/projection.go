// Package budget combines category budget configuration with spend
// aggregates to produce remaining-budget projections.
package budget

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jinofin/backend/internal/domain/entity"
)

// NoBudgetLabel is the fixed indicator shown when a category has no budget
// set; callers must not render a remaining-amount number in that case.
const NoBudgetLabel = "no budget set"

// Projection is the remaining-budget figure for one category, including the
// pending amount currently typed into the entry form but not yet saved.
type Projection struct {
	Category  string
	Budget    decimal.Decimal
	Spent     decimal.Decimal
	Pending   decimal.Decimal
	Remaining decimal.Decimal // May go negative; never clamped.
	HasBudget bool
	Label     string
}

// Project computes remaining = budget - spentSoFar - pending for the selected
// category. categorySpend is the selected month's expense sums per category;
// a missing entry means zero spend. A category without a positive budget
// reports HasBudget false and the fixed no-budget label.
func Project(
	categorySpend map[string]decimal.Decimal,
	settings *entity.HouseholdSettings,
	category string,
	pending decimal.Decimal,
) Projection {
	spent, ok := categorySpend[category]
	if !ok {
		spent = decimal.Zero
	}

	limit, hasBudget := settings.BudgetFor(category)
	if !hasBudget {
		return Projection{
			Category:  category,
			Budget:    decimal.Zero,
			Spent:     spent,
			Pending:   pending,
			Remaining: decimal.Zero,
			HasBudget: false,
			Label:     NoBudgetLabel,
		}
	}

	remaining := limit.Sub(spent).Sub(pending)
	return Projection{
		Category:  category,
		Budget:    limit,
		Spent:     spent,
		Pending:   pending,
		Remaining: remaining,
		HasBudget: true,
		Label: fmt.Sprintf("%s %s left this month for %s",
			remaining.StringFixed(2), settings.Currency, category),
	}
}

// LeftToSpend computes the aggregate remaining-budget view: one projection
// per category present in either the budget map or the category list whose
// budget is positive, in alphabetical order. Categories without a budget are
// omitted entirely, not shown as unlimited.
func LeftToSpend(
	categorySpend map[string]decimal.Decimal,
	settings *entity.HouseholdSettings,
) []Projection {
	names := make(map[string]struct{}, len(settings.Categories)+len(settings.CategoryBudgets))
	for _, c := range settings.Categories {
		names[c] = struct{}{}
	}
	for c := range settings.CategoryBudgets {
		names[c] = struct{}{}
	}

	ordered := make([]string, 0, len(names))
	for c := range names {
		if _, ok := settings.BudgetFor(c); ok {
			ordered = append(ordered, c)
		}
	}
	sort.Strings(ordered)

	projections := make([]Projection, 0, len(ordered))
	for _, c := range ordered {
		projections = append(projections, Project(categorySpend, settings, c, decimal.Zero))
	}
	return projections
}
