// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/adapter"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// ExportCSVInput identifies the month to export.
type ExportCSVInput struct {
	UserID uuid.UUID
	Year   int
	Month  int
}

// ExportCSVOutput carries the rendered CSV document.
type ExportCSVOutput struct {
	Filename string
	Content  string
}

// ExportCSVUseCase renders one month's transactions as a CSV document.
type ExportCSVUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewExportCSVUseCase creates a new ExportCSVUseCase instance.
func NewExportCSVUseCase(transactionRepo adapter.TransactionRepository) *ExportCSVUseCase {
	return &ExportCSVUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute renders the month's transactions as CSV. The date column uses the
// M/D/YYYY format, descriptions are always quoted with internal quotes
// doubled, and amounts are absolute values with two decimal places.
func (uc *ExportCSVUseCase) Execute(ctx context.Context, input ExportCSVInput) (*ExportCSVOutput, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, domainerror.NewSummaryError(
			domainerror.ErrCodeInvalidMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidMonth,
		)
	}

	txns, err := uc.transactionRepo.FindByUserAndMonth(ctx, input.UserID, input.Year, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for export: %w", err)
	}

	if len(txns) == 0 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNoTransactionsForMonth,
			"no transactions for month",
			domainerror.ErrNoTransactionsForMonth,
		)
	}

	var b strings.Builder
	b.WriteString("Date,Description,Category,Amount,Type\n")
	for _, txn := range txns {
		date := fmt.Sprintf("%d/%d/%d", int(txn.Date.Month()), txn.Date.Day(), txn.Date.Year())
		description := `"` + strings.ReplaceAll(txn.Description, `"`, `""`) + `"`
		b.WriteString(fmt.Sprintf("%s,%s,%s,%s,%s\n",
			date,
			description,
			txn.Category,
			txn.Amount.Abs().StringFixed(2),
			txn.Type,
		))
	}

	return &ExportCSVOutput{
		Filename: fmt.Sprintf("transactions-%04d-%02d.csv", input.Year, input.Month),
		Content:  b.String(),
	}, nil
}
