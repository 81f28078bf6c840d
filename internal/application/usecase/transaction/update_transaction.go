// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/application/usecase/summary"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update.
// Only non-nil fields are overwritten.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
	Date          *time.Time
	Description   *string
	Category      *entity.Category
	Amount        *decimal.Decimal
	Type          *entity.TransactionType
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles partial transaction updates. Any change to
// the date, amount, category or type invalidates the month's aggregates, so
// both the original month and (when the date moved) the new month are
// recomputed.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	recompute       *summary.RecomputeUseCase
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	recompute *summary.RecomputeUseCase,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		recompute:       recompute,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	txn, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	oldYear, oldMonth := txn.Date.Year(), int(txn.Date.Month())

	if input.Date != nil {
		txn.Date = entity.TruncateToDate(*input.Date)
	}
	if input.Description != nil {
		txn.Description = *input.Description
	}
	if input.Category != nil {
		txn.Category = *input.Category
	}
	if input.Amount != nil {
		txn.Amount = input.Amount.Abs().Round(2)
	}
	if input.Type != nil {
		txn.Type = *input.Type
	}

	if err := validateFields(txn.Description, txn.Category, txn.Amount, txn.Type); err != nil {
		return nil, err
	}

	if err := uc.transactionRepo.Update(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	uc.recomputeMonth(ctx, txn.UserID, oldYear, oldMonth)

	newYear, newMonth := txn.Date.Year(), int(txn.Date.Month())
	if newYear != oldYear || newMonth != oldMonth {
		uc.recomputeMonth(ctx, txn.UserID, newYear, newMonth)
	}

	return &UpdateTransactionOutput{Transaction: ToOutput(txn)}, nil
}

// recomputeMonth refreshes one month's aggregates, logging failures instead of
// failing the already-persisted update.
func (uc *UpdateTransactionUseCase) recomputeMonth(ctx context.Context, userID uuid.UUID, year, month int) {
	if _, err := uc.recompute.Execute(ctx, summary.RecomputeInput{
		UserID: userID,
		Year:   year,
		Month:  month,
	}); err != nil {
		slog.Warn("Failed to recompute summary after transaction update",
			"userID", userID,
			"year", year,
			"month", month,
			"error", err,
		)
	}
}
