// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/adapter"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	UserID uuid.UUID
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
}

// ListTransactionsUseCase lists all transactions for a user.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute lists the user's transactions, newest first.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	txns, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &ListTransactionsOutput{Transactions: ToOutputs(txns)}, nil
}

// ListMonthTransactionsInput represents the input for listing a month's transactions.
type ListMonthTransactionsInput struct {
	UserID uuid.UUID
	Year   int
	Month  int
}

// ListMonthTransactionsUseCase lists the transactions of one calendar month.
type ListMonthTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListMonthTransactionsUseCase creates a new ListMonthTransactionsUseCase instance.
func NewListMonthTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListMonthTransactionsUseCase {
	return &ListMonthTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute lists the user's transactions for the given month.
func (uc *ListMonthTransactionsUseCase) Execute(ctx context.Context, input ListMonthTransactionsInput) (*ListTransactionsOutput, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, domainerror.NewSummaryError(
			domainerror.ErrCodeInvalidMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidMonth,
		)
	}

	txns, err := uc.transactionRepo.FindByUserAndMonth(ctx, input.UserID, input.Year, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to list month transactions: %w", err)
	}

	return &ListTransactionsOutput{Transactions: ToOutputs(txns)}, nil
}
