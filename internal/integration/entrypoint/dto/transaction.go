// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/fintrack/backend/internal/application/usecase/transaction"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Category    string  `json:"category" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=expense income"`
	Source      string  `json:"source,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
// Only supplied fields are overwritten.
type UpdateTransactionRequest struct {
	Date        *string  `json:"date,omitempty"`
	Description *string  `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Category    *string  `json:"category,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Type        *string  `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Amount      string    `json:"amount"`
	Type        string    `json:"type"`
	Source      string    `json:"source,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a TransactionOutput to a TransactionResponse DTO.
func ToTransactionResponse(txn *transaction.TransactionOutput) TransactionResponse {
	return TransactionResponse{
		ID:          txn.ID.String(),
		UserID:      txn.UserID.String(),
		Date:        txn.Date.Format("2006-01-02"),
		Description: txn.Description,
		Category:    string(txn.Category),
		Amount:      txn.Amount.String(),
		Type:        string(txn.Type),
		Source:      txn.Source,
		CreatedAt:   txn.CreatedAt,
	}
}

// ToTransactionListResponse converts transaction outputs to a list response DTO.
func ToTransactionListResponse(txns []*transaction.TransactionOutput) TransactionListResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(txn)
	}
	return TransactionListResponse{Transactions: responses}
}
