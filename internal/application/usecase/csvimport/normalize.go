// Package csvimport normalizes, previews, commits, and exports CSV
// transaction files.
package csvimport

import (
	"sort"
	"strings"
	"time"

	"github.com/jinofin/backend/internal/application/usecase/amount"
	"github.com/jinofin/backend/internal/domain/entity"
)

// DefaultCategory is assigned to rows whose category is empty after trimming.
const DefaultCategory = "Other"

// strictDateLayouts are tried in order; the first layout that parses the raw
// value wins. Day-first regional forms come before month-first.
var strictDateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"2006-01-02 15:04:05",
	"02.01.2006",
}

// lenientDateLayouts are the fallback when no strict layout matches.
var lenientDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
	"2 Jan 2006",
	"Jan 2, 2006",
	"02-01-2006",
}

// logical CSV fields resolved against the header row.
const (
	fieldType     = "type"
	fieldAmount   = "amount"
	fieldCategory = "category"
	fieldDate     = "date"
	fieldNote     = "note"
)

// NormalizedRow is the canonical shape of one imported row. Invalid rows are
// retained for preview visibility but excluded from commit.
type NormalizedRow struct {
	Type       entity.TransactionType
	Amount     float64 // NaN when the raw amount was not a number.
	AmountText string  // Normalized decimal string.
	Category   string
	Date       *time.Time // nil when no layout matched.
	Note       string
	Valid      bool
}

// NormalizeResult is the outcome of normalizing a whole file.
type NormalizeResult struct {
	Rows []NormalizedRow
	// NewCategories lists every distinct category observed across all rows
	// (valid or not) that is absent from the household's category list. It is
	// informational only; nothing is added to the list here.
	NewCategories []string
}

// NormalizeRows maps raw rows with arbitrary-case headers into canonical
// transaction shape. knownCategories is the household's current category
// list, used only to flag newly-seen names.
func NormalizeRows(rows []map[string]string, knownCategories []string, loc *time.Location) NormalizeResult {
	if loc == nil {
		loc = time.Local
	}

	known := make(map[string]struct{}, len(knownCategories))
	for _, c := range knownCategories {
		known[c] = struct{}{}
	}

	result := NormalizeResult{Rows: make([]NormalizedRow, 0, len(rows))}
	seen := make(map[string]struct{})

	for _, raw := range rows {
		row := normalizeRow(raw, loc)
		result.Rows = append(result.Rows, row)

		if _, dup := seen[row.Category]; dup {
			continue
		}
		seen[row.Category] = struct{}{}
		if _, ok := known[row.Category]; !ok {
			result.NewCategories = append(result.NewCategories, row.Category)
		}
	}

	sort.Strings(result.NewCategories)
	return result
}

func normalizeRow(raw map[string]string, loc *time.Location) NormalizedRow {
	row := NormalizedRow{
		Type: entity.TransactionTypeExpense,
	}

	if strings.EqualFold(strings.TrimSpace(lookupField(raw, fieldType)), string(entity.TransactionTypeIncome)) {
		row.Type = entity.TransactionTypeIncome
	}

	parsed := amount.Parse(lookupField(raw, fieldAmount))
	row.Amount = parsed.Value
	row.AmountText = parsed.Normalized

	row.Category = strings.TrimSpace(lookupField(raw, fieldCategory))
	if row.Category == "" {
		row.Category = DefaultCategory
	}

	row.Date = parseDate(lookupField(raw, fieldDate), loc)
	row.Note = strings.TrimSpace(lookupField(raw, fieldNote))

	row.Valid = parsed.IsNumber() && row.Amount > 0 && row.Date != nil
	return row
}

// lookupField resolves a logical field against arbitrary-case headers: the
// exact name is tried first, then its lowercase form, then its uppercase form.
func lookupField(raw map[string]string, field string) string {
	if v, ok := raw[field]; ok {
		return v
	}
	if v, ok := raw[strings.ToLower(field)]; ok {
		return v
	}
	if v, ok := raw[strings.ToUpper(field)]; ok {
		return v
	}
	// Headers like "Amount" are neither the exact, lower, nor upper form of
	// the logical name; fall back to a case-insensitive scan.
	for k, v := range raw {
		if strings.EqualFold(k, field) {
			return v
		}
	}
	return ""
}

func parseDate(raw string, loc *time.Location) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	for _, layout := range strictDateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return &t
		}
	}
	for _, layout := range lenientDateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return &t
		}
	}
	return nil
}
