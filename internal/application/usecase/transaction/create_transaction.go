// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
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

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	Date        time.Time
	Description string
	Category    entity.Category
	Amount      decimal.Decimal
	Type        entity.TransactionType
	Source      string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase handles transaction creation and triggers the
// recompute of the affected month's aggregates.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	recompute       *summary.RecomputeUseCase
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	recompute *summary.RecomputeUseCase,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		recompute:       recompute,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateFields(input.Description, input.Category, input.Amount, input.Type); err != nil {
		return nil, err
	}

	txn := entity.NewTransaction(
		input.UserID,
		input.Date,
		input.Description,
		input.Category,
		input.Amount,
		input.Type,
		input.Source,
	)

	if err := uc.transactionRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	// Summary maintenance is best effort: the transaction is already
	// persisted, so a recompute failure is logged rather than returned.
	if _, err := uc.recompute.Execute(ctx, summary.RecomputeInput{
		UserID: txn.UserID,
		Year:   txn.Date.Year(),
		Month:  int(txn.Date.Month()),
	}); err != nil {
		slog.Warn("Failed to recompute summary after transaction creation",
			"transactionID", txn.ID,
			"error", err,
		)
	}

	return &CreateTransactionOutput{Transaction: ToOutput(txn)}, nil
}

// validateFields applies the shared write-boundary validation rules.
func validateFields(
	description string,
	category entity.Category,
	amount decimal.Decimal,
	transactionType entity.TransactionType,
) error {
	if len(description) > MaxDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	if !isValidTransactionType(transactionType) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if !entity.IsValidCategory(category) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidCategory,
			fmt.Sprintf("unknown category %q", category),
			domainerror.ErrInvalidCategory,
		)
	}

	if amount.IsZero() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be nonzero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	return nil
}
