// Package period resolves calendar-month keys and relative multi-month
// windows into inclusive instant ranges.
package period

import (
	"time"

	domainerror "github.com/jinofin/backend/internal/domain/error"
)

// MonthKeyLayout is the canonical YYYY-MM month key layout. Keys sort
// lexicographically in chronological order.
const MonthKeyLayout = "2006-01"

// Range is an inclusive {start, end} instant pair bounding a query window.
type Range struct {
	Start time.Time
	End   time.Time
}

// MonthKey returns the YYYY-MM key of the month containing t.
func MonthKey(t time.Time) string {
	return t.Format(MonthKeyLayout)
}

// MonthRange resolves a YYYY-MM key into the full calendar month in the given
// location: start inclusive at 00:00:00.000 of the first day, end inclusive
// at 23:59:59.999 of the last day.
func MonthRange(monthKey string, loc *time.Location) (Range, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(MonthKeyLayout, monthKey, loc)
	if err != nil {
		return Range{}, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidMonthKey,
			"month key must be in YYYY-MM format",
			domainerror.ErrInvalidMonthKey,
		)
	}

	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return Range{Start: start, End: end}, nil
}

// TrailingMonths resolves a "trailing N months" request relative to ref: the
// window runs from the first instant of the month N months before ref's month
// through the last instant of ref's month. Month arithmetic rolls over year
// boundaries.
func TrailingMonths(n int, ref time.Time) (Range, error) {
	if n < 1 {
		return Range{}, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidWindow,
			"window must span at least one month",
			domainerror.ErrInvalidWindow,
		)
	}

	loc := ref.Location()
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, loc).AddDate(0, -n, 0)
	end := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, loc).AddDate(0, 1, 0).Add(-time.Millisecond)
	return Range{Start: start, End: end}, nil
}
