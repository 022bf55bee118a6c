package dto

import (
	"github.com/jinofin/backend/internal/application/usecase/aggregate"
	"github.com/jinofin/backend/internal/application/usecase/budget"
)

// toProjections converts projections to response DTOs.
func toProjections(projections []budget.Projection) []ProjectionResponse {
	out := make([]ProjectionResponse, 0, len(projections))
	for _, p := range projections {
		out = append(out, ToProjectionResponse(p))
	}
	return out
}

// toMonthlySeries converts month buckets to response DTOs.
func toMonthlySeries(buckets []aggregate.MonthBucket) []MonthBucketResponse {
	out := make([]MonthBucketResponse, 0, len(buckets))
	for _, bucket := range buckets {
		out = append(out, MonthBucketResponse{
			Month:   bucket.Month,
			Income:  bucket.Income.StringFixed(2),
			Expense: bucket.Expense.StringFixed(2),
		})
	}
	return out
}

// ToProjectionResponse converts a projection to a response DTO.
func ToProjectionResponse(p budget.Projection) ProjectionResponse {
	return ProjectionResponse{
		Category:  p.Category,
		Budget:    p.Budget.StringFixed(2),
		Spent:     p.Spent.StringFixed(2),
		Pending:   p.Pending.StringFixed(2),
		Remaining: p.Remaining.StringFixed(2),
		HasBudget: p.HasBudget,
		Label:     p.Label,
	}
}
