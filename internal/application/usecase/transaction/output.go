// Package transaction contains transaction-related use cases.
package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
)

const (
	// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
	MaxDescriptionLength = 255
)

// TransactionOutput represents a transaction in use case outputs.
type TransactionOutput struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        time.Time
	Description string
	Category    entity.Category
	Amount      decimal.Decimal
	Type        entity.TransactionType
	Source      string
	CreatedAt   time.Time
}

// ToOutput converts a Transaction entity to a TransactionOutput.
func ToOutput(txn *entity.Transaction) *TransactionOutput {
	return &TransactionOutput{
		ID:          txn.ID,
		UserID:      txn.UserID,
		Date:        txn.Date,
		Description: txn.Description,
		Category:    txn.Category,
		Amount:      txn.Amount,
		Type:        txn.Type,
		Source:      txn.Source,
		CreatedAt:   txn.CreatedAt,
	}
}

// ToOutputs converts a slice of Transaction entities to outputs.
func ToOutputs(txns []*entity.Transaction) []*TransactionOutput {
	outputs := make([]*TransactionOutput, len(txns))
	for i, txn := range txns {
		outputs[i] = ToOutput(txn)
	}
	return outputs
}

// isValidTransactionType validates the transaction type.
func isValidTransactionType(transactionType entity.TransactionType) bool {
	return transactionType == entity.TransactionTypeExpense || transactionType == entity.TransactionTypeIncome
}
