// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/jinofin/backend/internal/domain/entity"
)

// SaveSettingsRequest represents a partial settings update; omitted fields
// keep their stored values.
type SaveSettingsRequest struct {
	Currency        *string            `json:"currency,omitempty" binding:"omitempty,len=3"`
	TotalBudget     *string            `json:"total_budget,omitempty"`
	Categories      *[]string          `json:"categories,omitempty"`
	CategoryBudgets *map[string]string `json:"category_budgets,omitempty"`
}

// SettingsResponse represents the household settings document.
type SettingsResponse struct {
	Currency        string            `json:"currency"`
	TotalBudget     string            `json:"total_budget"`
	Categories      []string          `json:"categories"`
	CategoryBudgets map[string]string `json:"category_budgets"`
}

// ToSettingsResponse converts a settings entity to a response DTO.
func ToSettingsResponse(settings *entity.HouseholdSettings) SettingsResponse {
	budgets := make(map[string]string, len(settings.CategoryBudgets))
	for name, limit := range settings.CategoryBudgets {
		budgets[name] = limit.String()
	}
	return SettingsResponse{
		Currency:        settings.Currency,
		TotalBudget:     settings.TotalBudget.String(),
		Categories:      settings.Categories,
		CategoryBudgets: budgets,
	}
}
