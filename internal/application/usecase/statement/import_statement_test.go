package statement

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/usecase/summary"
	"github.com/fintrack/backend/internal/application/usecase/transaction"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
	"github.com/fintrack/backend/internal/integration/memory"
)

func newImportFixture() (*ImportStatementUseCase, uuid.UUID) {
	store := memory.NewStore()
	transactionRepo := memory.NewTransactionRepository(store)
	summaryRepo := memory.NewSummaryRepository(store)

	recompute := summary.NewRecomputeUseCase(transactionRepo, summaryRepo)
	createTransaction := transaction.NewCreateTransactionUseCase(transactionRepo, recompute)
	getSummary := summary.NewGetSummaryUseCase(summaryRepo)

	return NewImportStatementUseCase(createTransaction, getSummary), uuid.New()
}

func TestImportStatementUseCase_Execute(t *testing.T) {
	t.Run("rejects content that is not base64", func(t *testing.T) {
		useCase, userID := newImportFixture()

		_, err := useCase.Execute(context.Background(), ImportStatementInput{
			UserID:  userID,
			Content: "not!!base64%%",
		})

		if !errors.Is(err, domainerror.ErrInvalidStatementContent) {
			t.Errorf("expected ErrInvalidStatementContent, got %v", err)
		}
	})

	t.Run("rejects statements with no extractable transactions", func(t *testing.T) {
		useCase, userID := newImportFixture()
		content := base64.StdEncoding.EncodeToString([]byte("ACCOUNT SUMMARY\nno amounts here"))

		_, err := useCase.Execute(context.Background(), ImportStatementInput{
			UserID:  userID,
			Content: content,
		})

		if !errors.Is(err, domainerror.ErrNoTransactionsExtracted) {
			t.Errorf("expected ErrNoTransactionsExtracted, got %v", err)
		}
	})

	t.Run("creates transactions and returns the refreshed summary", func(t *testing.T) {
		useCase, userID := newImportFixture()
		text := "DIRECT DEPOSIT SALARY $3,000.00\nGROCERY MART $150.00\nRENT PAYMENT $1,000.00"
		content := base64.StdEncoding.EncodeToString([]byte(text))

		out, err := useCase.Execute(context.Background(), ImportStatementInput{
			UserID:   userID,
			Content:  content,
			Filename: "march.txt",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.Transactions) != 3 {
			t.Fatalf("expected 3 created transactions, got %d", len(out.Transactions))
		}
		for _, txn := range out.Transactions {
			if txn.Source != "march.txt" {
				t.Errorf("expected source march.txt, got %q", txn.Source)
			}
		}

		if out.Transactions[0].Type != entity.TransactionTypeIncome {
			t.Errorf("expected salary line classified as income, got %s", out.Transactions[0].Type)
		}

		if out.Summary == nil {
			t.Fatal("expected the affected month's summary in the output")
		}
		if !out.Summary.TotalIncome.Equal(decimal.RequireFromString("3000")) {
			t.Errorf("expected total income 3000, got %s", out.Summary.TotalIncome)
		}
		if !out.Summary.TotalExpenses.Equal(decimal.RequireFromString("1150")) {
			t.Errorf("expected total expenses 1150, got %s", out.Summary.TotalExpenses)
		}
		if len(out.Breakdowns) != 2 {
			t.Errorf("expected Food and Housing breakdowns, got %d rows", len(out.Breakdowns))
		}
	})

	t.Run("defaults the source when no filename is given", func(t *testing.T) {
		useCase, userID := newImportFixture()
		content := base64.StdEncoding.EncodeToString([]byte("COFFEE SHOP $4.50"))

		out, err := useCase.Execute(context.Background(), ImportStatementInput{
			UserID:  userID,
			Content: content,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Transactions[0].Source != DefaultSource {
			t.Errorf("expected source %q, got %q", DefaultSource, out.Transactions[0].Source)
		}
	})
}
