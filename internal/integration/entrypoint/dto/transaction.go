// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/jinofin/backend/internal/application/usecase/transaction"
)

// CreateTransactionRequest represents the request body for the entry-form
// save. Amount is the raw text the user typed; normalization happens in the
// use case.
type CreateTransactionRequest struct {
	Type     string `json:"type" binding:"required,oneof=expense income"`
	Amount   string `json:"amount" binding:"required"`
	Category string `json:"category" binding:"required"`
	Date     string `json:"date" binding:"required"` // RFC 3339 instant.
	Note     string `json:"note,omitempty" binding:"omitempty,max=1000"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Amount    string    `json:"amount"`
	Category  string    `json:"category"`
	Date      time.Time `json:"date"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// ToTransactionResponse converts a use case output to a response DTO.
func ToTransactionResponse(output *transaction.TransactionOutput) TransactionResponse {
	return TransactionResponse{
		ID:        output.ID.String(),
		Type:      string(output.Type),
		Amount:    output.Amount.String(),
		Category:  output.Category,
		Date:      output.Date,
		Note:      output.Note,
		CreatedAt: output.CreatedAt,
	}
}

// ToTransactionListResponse converts a list output to a response DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	response := TransactionListResponse{
		Transactions: make([]TransactionResponse, 0, len(output.Transactions)),
		Total:        output.Total,
	}
	for _, txn := range output.Transactions {
		response.Transactions = append(response.Transactions, ToTransactionResponse(txn))
	}
	return response
}
