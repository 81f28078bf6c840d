package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestNewTransaction(t *testing.T) {
	t.Run("normalizes the amount to a two-decimal magnitude", func(t *testing.T) {
		txn := NewTransaction(
			uuid.New(),
			time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC),
			"coffee",
			CategoryFood,
			decimal.RequireFromString("-4.999"),
			TransactionTypeExpense,
			"",
		)

		if !txn.Amount.Equal(decimal.RequireFromString("5.00")) {
			t.Errorf("expected amount 5.00, got %s", txn.Amount)
		}
	})

	t.Run("truncates the date to midnight UTC", func(t *testing.T) {
		txn := NewTransaction(
			uuid.New(),
			time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC),
			"coffee",
			CategoryFood,
			decimal.RequireFromString("4.50"),
			TransactionTypeExpense,
			"",
		)

		want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		if !txn.Date.Equal(want) {
			t.Errorf("expected date %s, got %s", want, txn.Date)
		}
	})
}

func TestTransaction_SignedAmount(t *testing.T) {
	expense := NewTransaction(uuid.New(), time.Now(), "rent", CategoryHousing,
		decimal.RequireFromString("1500"), TransactionTypeExpense, "")
	if !expense.SignedAmount().Equal(decimal.RequireFromString("-1500")) {
		t.Errorf("expected -1500 for expense, got %s", expense.SignedAmount())
	}

	income := NewTransaction(uuid.New(), time.Now(), "salary", CategoryIncome,
		decimal.RequireFromString("3000"), TransactionTypeIncome, "")
	if !income.SignedAmount().Equal(decimal.RequireFromString("3000")) {
		t.Errorf("expected 3000 for income, got %s", income.SignedAmount())
	}
}

func TestIsValidCategory(t *testing.T) {
	for _, category := range Categories {
		if !IsValidCategory(category) {
			t.Errorf("expected %s to be valid", category)
		}
	}
	if IsValidCategory("Gambling") {
		t.Error("expected unknown category to be invalid")
	}
}

func TestNewMonthlySummary(t *testing.T) {
	s := NewMonthlySummary(uuid.New(), 2024, 3,
		decimal.RequireFromString("1000"),
		decimal.RequireFromString("200"),
	)
	if !s.NetBalance.Equal(decimal.RequireFromString("800")) {
		t.Errorf("expected net balance 800, got %s", s.NetBalance)
	}
}
