// Package model defines database models for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jinofin/backend/internal/domain/entity"
)

// SettingsModel represents the household_settings table. The category list
// and budget map are stored as JSON documents, mirroring the schemaless
// settings document this table stands in for.
type SettingsModel struct {
	HouseholdID     uuid.UUID                  `gorm:"type:uuid;primaryKey"`
	Currency        string                     `gorm:"type:varchar(3);not null"`
	TotalBudget     decimal.Decimal            `gorm:"type:decimal(15,2);not null"`
	Categories      []string                   `gorm:"serializer:json;not null"`
	CategoryBudgets map[string]decimal.Decimal `gorm:"serializer:json;not null"`
	CreatedAt       time.Time                  `gorm:"not null"`
	UpdatedAt       time.Time                  `gorm:"not null"`
}

// TableName returns the table name for the SettingsModel.
func (SettingsModel) TableName() string {
	return "household_settings"
}

// ToEntity converts a SettingsModel to a domain HouseholdSettings entity.
func (m *SettingsModel) ToEntity() *entity.HouseholdSettings {
	budgets := m.CategoryBudgets
	if budgets == nil {
		budgets = make(map[string]decimal.Decimal)
	}
	return &entity.HouseholdSettings{
		HouseholdID:     m.HouseholdID,
		Currency:        m.Currency,
		TotalBudget:     m.TotalBudget,
		Categories:      m.Categories,
		CategoryBudgets: budgets,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// SettingsFromEntity creates a SettingsModel from a domain HouseholdSettings entity.
func SettingsFromEntity(settings *entity.HouseholdSettings) *SettingsModel {
	return &SettingsModel{
		HouseholdID:     settings.HouseholdID,
		Currency:        settings.Currency,
		TotalBudget:     settings.TotalBudget,
		Categories:      settings.Categories,
		CategoryBudgets: settings.CategoryBudgets,
		CreatedAt:       settings.CreatedAt,
		UpdatedAt:       settings.UpdatedAt,
	}
}
