package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

func TestUpdateTransactionUseCase_Execute(t *testing.T) {
	t.Run("overwrites only the supplied fields", func(t *testing.T) {
		f := newTransactionFixture()
		create := NewCreateTransactionUseCase(f.transactionRepo, f.recompute)
		update := NewUpdateTransactionUseCase(f.transactionRepo, f.recompute)

		created, err := create.Execute(context.Background(), validCreateInput(f.userID))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		newAmount := decimal.RequireFromString("120.00")
		out, err := update.Execute(context.Background(), UpdateTransactionInput{
			TransactionID: created.Transaction.ID,
			UserID:        f.userID,
			Amount:        &newAmount,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !out.Transaction.Amount.Equal(newAmount) {
			t.Errorf("expected amount 120.00, got %s", out.Transaction.Amount)
		}
		if out.Transaction.Description != "Weekly groceries" {
			t.Errorf("expected untouched description, got %q", out.Transaction.Description)
		}
		if out.Transaction.Category != entity.CategoryFood {
			t.Errorf("expected untouched category, got %s", out.Transaction.Category)
		}

		stored, err := f.summaryRepo.FindByUserAndMonth(context.Background(), f.userID, 2024, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !stored.TotalExpenses.Equal(newAmount) {
			t.Errorf("expected summary refreshed to 120.00, got %s", stored.TotalExpenses)
		}
	})

	t.Run("moving the date recomputes both months", func(t *testing.T) {
		f := newTransactionFixture()
		create := NewCreateTransactionUseCase(f.transactionRepo, f.recompute)
		update := NewUpdateTransactionUseCase(f.transactionRepo, f.recompute)

		created, err := create.Execute(context.Background(), validCreateInput(f.userID))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		newDate := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)
		if _, err := update.Execute(context.Background(), UpdateTransactionInput{
			TransactionID: created.Transaction.ID,
			UserID:        f.userID,
			Date:          &newDate,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		march, err := f.summaryRepo.FindByUserAndMonth(context.Background(), f.userID, 2024, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !march.TotalExpenses.IsZero() {
			t.Errorf("expected the old month zeroed, got %s", march.TotalExpenses)
		}

		april, err := f.summaryRepo.FindByUserAndMonth(context.Background(), f.userID, 2024, 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !april.TotalExpenses.Equal(decimal.RequireFromString("82.50")) {
			t.Errorf("expected the new month to carry the expense, got %s", april.TotalExpenses)
		}
	})

	t.Run("rejects updates that break validation", func(t *testing.T) {
		f := newTransactionFixture()
		create := NewCreateTransactionUseCase(f.transactionRepo, f.recompute)
		update := NewUpdateTransactionUseCase(f.transactionRepo, f.recompute)

		created, err := create.Execute(context.Background(), validCreateInput(f.userID))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		badCategory := entity.Category("Crypto")
		_, err = update.Execute(context.Background(), UpdateTransactionInput{
			TransactionID: created.Transaction.ID,
			UserID:        f.userID,
			Category:      &badCategory,
		})
		if !errors.Is(err, domainerror.ErrInvalidCategory) {
			t.Errorf("expected ErrInvalidCategory, got %v", err)
		}

		stored, err := f.transactionRepo.FindByID(context.Background(), created.Transaction.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.Category != entity.CategoryFood {
			t.Errorf("expected stored category untouched, got %s", stored.Category)
		}
	})

	t.Run("returns not found for unknown transactions", func(t *testing.T) {
		f := newTransactionFixture()
		update := NewUpdateTransactionUseCase(f.transactionRepo, f.recompute)

		description := "does not matter"
		_, err := update.Execute(context.Background(), UpdateTransactionInput{
			TransactionID: uuid.New(),
			UserID:        f.userID,
			Description:   &description,
		})
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound, got %v", err)
		}
	})
}
