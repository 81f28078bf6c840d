// Package statement contains the bank statement import use cases.
package statement

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/usecase/summary"
	"github.com/fintrack/backend/internal/application/usecase/transaction"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// DefaultSource tags imported transactions when no filename is supplied.
const DefaultSource = "statement"

// ImportStatementInput represents the input for a statement upload.
type ImportStatementInput struct {
	UserID   uuid.UUID
	Content  string // base64-encoded statement text
	Filename string // optional provenance marker
}

// ImportStatementOutput carries the created transactions and the refreshed
// summary of the affected month.
type ImportStatementOutput struct {
	Transactions []*transaction.TransactionOutput
	Summary      *entity.MonthlySummary
	Breakdowns   []*entity.CategoryBreakdown
}

// ImportStatementUseCase decodes uploaded statement content, extracts
// candidate transactions with the keyword heuristics, and feeds each
// candidate through normal transaction creation. Candidates are stamped with
// today's date because the heuristics do not parse statement dates.
type ImportStatementUseCase struct {
	createTransaction *transaction.CreateTransactionUseCase
	getSummary        *summary.GetSummaryUseCase
}

// NewImportStatementUseCase creates a new ImportStatementUseCase instance.
func NewImportStatementUseCase(
	createTransaction *transaction.CreateTransactionUseCase,
	getSummary *summary.GetSummaryUseCase,
) *ImportStatementUseCase {
	return &ImportStatementUseCase{
		createTransaction: createTransaction,
		getSummary:        getSummary,
	}
}

// Execute performs the statement import.
func (uc *ImportStatementUseCase) Execute(ctx context.Context, input ImportStatementInput) (*ImportStatementOutput, error) {
	decoded, err := base64.StdEncoding.DecodeString(input.Content)
	if err != nil {
		return nil, domainerror.NewStatementError(
			domainerror.ErrCodeInvalidStatementContent,
			"content must be base64 encoded",
			domainerror.ErrInvalidStatementContent,
		)
	}

	candidates := Parse(string(decoded))
	if len(candidates) == 0 {
		return nil, domainerror.NewStatementError(
			domainerror.ErrCodeNoTransactionsExtracted,
			"no transactions could be extracted from the statement",
			domainerror.ErrNoTransactionsExtracted,
		)
	}

	source := input.Filename
	if source == "" {
		source = DefaultSource
	}

	today := time.Now().UTC()
	created := make([]*transaction.TransactionOutput, 0, len(candidates))

	for _, candidate := range candidates {
		out, err := uc.createTransaction.Execute(ctx, transaction.CreateTransactionInput{
			UserID:      input.UserID,
			Date:        today,
			Description: candidate.Description,
			Category:    candidate.Category,
			Amount:      candidate.Amount,
			Type:        candidate.Type,
			Source:      source,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to persist extracted transaction: %w", err)
		}
		created = append(created, out.Transaction)
	}

	slog.Info("Imported statement transactions",
		"userID", input.UserID,
		"source", source,
		"count", len(created),
	)

	output := &ImportStatementOutput{Transactions: created}

	// All candidates carry today's date, so a single month was touched.
	summaryOut, err := uc.getSummary.Execute(ctx, summary.GetSummaryInput{
		UserID: input.UserID,
		Year:   today.Year(),
		Month:  int(today.Month()),
	})
	if err != nil {
		slog.Warn("Failed to load summary after statement import", "error", err)
		return output, nil
	}

	output.Summary = summaryOut.Summary
	output.Breakdowns = summaryOut.Breakdowns
	return output, nil
}
