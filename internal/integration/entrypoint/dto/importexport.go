// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/jinofin/backend/internal/application/usecase/csvimport"
)

// ImportRowResponse represents one normalized row in the import preview.
// Invalid rows are included so the user can see why they will be skipped.
type ImportRowResponse struct {
	Type     string     `json:"type"`
	Amount   string     `json:"amount"`
	Category string     `json:"category"`
	Date     *time.Time `json:"date"`
	Note     string     `json:"note"`
	Valid    bool       `json:"valid"`
}

// ImportPreviewResponse represents the import preview.
type ImportPreviewResponse struct {
	Rows          []ImportRowResponse `json:"rows"`
	ValidCount    int                 `json:"valid_count"`
	InvalidCount  int                 `json:"invalid_count"`
	NewCategories []string            `json:"new_categories"`
}

// ImportCommitResponse represents the result of the batch commit.
type ImportCommitResponse struct {
	ImportedCount int `json:"imported_count"`
	SkippedCount  int `json:"skipped_count"`
}

// ToImportPreviewResponse converts a preview output to a response DTO.
func ToImportPreviewResponse(output *csvimport.PreviewImportOutput) ImportPreviewResponse {
	response := ImportPreviewResponse{
		Rows:          make([]ImportRowResponse, 0, len(output.Rows)),
		ValidCount:    output.ValidCount,
		InvalidCount:  output.InvalidCount,
		NewCategories: output.NewCategories,
	}
	if response.NewCategories == nil {
		response.NewCategories = []string{}
	}
	for _, row := range output.Rows {
		response.Rows = append(response.Rows, ImportRowResponse{
			Type:     string(row.Type),
			Amount:   row.AmountText,
			Category: row.Category,
			Date:     row.Date,
			Note:     row.Note,
			Valid:    row.Valid,
		})
	}
	return response
}
