// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency assigned to a household at account setup.
const DefaultCurrency = "EUR"

// DefaultCategories is the category list assigned at account setup. The list
// is user-extensible and never auto-pruned; transactions keep their category
// string even after it is removed from here.
var DefaultCategories = []string{
	"Food",
	"Groceries",
	"Transport",
	"Housing",
	"Health",
	"Leisure",
	"Shopping",
	"Other",
}

// HouseholdSettings is the single per-household settings aggregate. It is
// created at account setup and mutated only through the settings save
// operation, which has partial-merge semantics.
type HouseholdSettings struct {
	HouseholdID     uuid.UUID
	Currency        string          // ISO code.
	TotalBudget     decimal.Decimal // Advisory monthly ceiling, never enforced.
	Categories      []string
	CategoryBudgets map[string]decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewHouseholdSettings creates the default settings aggregate for a household.
func NewHouseholdSettings(householdID uuid.UUID) *HouseholdSettings {
	now := time.Now().UTC()
	categories := make([]string, len(DefaultCategories))
	copy(categories, DefaultCategories)

	return &HouseholdSettings{
		HouseholdID:     householdID,
		Currency:        DefaultCurrency,
		TotalBudget:     decimal.Zero,
		Categories:      categories,
		CategoryBudgets: make(map[string]decimal.Decimal),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// BudgetFor returns the monthly limit configured for a category. Entries with
// a non-positive limit are treated as unset.
func (s *HouseholdSettings) BudgetFor(category string) (decimal.Decimal, bool) {
	limit, ok := s.CategoryBudgets[category]
	if !ok || limit.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, false
	}
	return limit, true
}

// HasCategory reports whether the category is present in the category list.
func (s *HouseholdSettings) HasCategory(name string) bool {
	for _, c := range s.Categories {
		if c == name {
			return true
		}
	}
	return false
}
