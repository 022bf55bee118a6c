package dto

import (
	"time"

	"github.com/jinofin/backend/internal/application/stream"
	"github.com/jinofin/backend/internal/application/usecase/dashboard"
)

// TypeTotalsResponse holds the per-type amount sums.
type TypeTotalsResponse struct {
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

// MonthBucketResponse holds one calendar month's income/expense sums.
type MonthBucketResponse struct {
	Month   string `json:"month"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

// CategoryShareResponse is one category's expense total with its share of
// all expenses in the window.
type CategoryShareResponse struct {
	Category   string  `json:"category"`
	Amount     string  `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// ProjectionResponse is the remaining-budget figure for one category.
type ProjectionResponse struct {
	Category  string `json:"category"`
	Budget    string `json:"budget"`
	Spent     string `json:"spent"`
	Pending   string `json:"pending"`
	Remaining string `json:"remaining"`
	HasBudget bool   `json:"has_budget"`
	Label     string `json:"label"`
}

// SummaryResponse represents the dashboard summary for one selected month
// over a trailing multi-month window.
type SummaryResponse struct {
	MonthKey      string                  `json:"month_key"`
	WindowStart   time.Time               `json:"window_start"`
	WindowEnd     time.Time               `json:"window_end"`
	Totals        TypeTotalsResponse      `json:"totals"`
	MonthlySeries []MonthBucketResponse   `json:"monthly_series"`
	Categories    []CategoryShareResponse `json:"categories"`
	LeftToSpend   []ProjectionResponse    `json:"left_to_spend"`
	Currency      string                  `json:"currency"`
}

// StreamSnapshotResponse is one server-sent dashboard recomputation.
type StreamSnapshotResponse struct {
	MonthKey      string                `json:"month_key"`
	Totals        TypeTotalsResponse    `json:"totals"`
	MonthlySeries []MonthBucketResponse `json:"monthly_series"`
	LeftToSpend   []ProjectionResponse  `json:"left_to_spend"`
	Ready         bool                  `json:"ready"`
}

// ToSummaryResponse converts a summary output to a response DTO.
func ToSummaryResponse(output *dashboard.GetSummaryOutput) SummaryResponse {
	response := SummaryResponse{
		MonthKey:    output.MonthKey,
		WindowStart: output.Window.Start,
		WindowEnd:   output.Window.End,
		Totals: TypeTotalsResponse{
			Income:  output.Summary.TotalsByType.Income.StringFixed(2),
			Expense: output.Summary.TotalsByType.Expense.StringFixed(2),
		},
		MonthlySeries: toMonthlySeries(output.Summary.MonthlySeries),
		Categories:    make([]CategoryShareResponse, 0, len(output.Categories)),
		LeftToSpend:   toProjections(output.LeftToSpend),
		Currency:      output.Currency,
	}
	for _, item := range output.Categories {
		response.Categories = append(response.Categories, CategoryShareResponse{
			Category:   item.Category,
			Amount:     item.Amount.StringFixed(2),
			Percentage: item.Percentage,
		})
	}
	return response
}

// ToStreamSnapshotResponse converts a live view snapshot to a response DTO.
func ToStreamSnapshotResponse(snapshot stream.ViewSnapshot) StreamSnapshotResponse {
	return StreamSnapshotResponse{
		MonthKey: snapshot.MonthKey,
		Totals: TypeTotalsResponse{
			Income:  snapshot.Summary.TotalsByType.Income.StringFixed(2),
			Expense: snapshot.Summary.TotalsByType.Expense.StringFixed(2),
		},
		MonthlySeries: toMonthlySeries(snapshot.Summary.MonthlySeries),
		LeftToSpend:   toProjections(snapshot.LeftToSpend),
		Ready:         snapshot.Ready,
	}
}
