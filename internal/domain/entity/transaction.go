// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Category represents one of the fixed transaction categories.
type Category string

const (
	CategoryHousing        Category = "Housing"
	CategoryTransportation Category = "Transportation"
	CategoryFood           Category = "Food"
	CategoryUtilities      Category = "Utilities"
	CategoryHealthcare     Category = "Healthcare"
	CategoryEntertainment  Category = "Entertainment"
	CategoryEducation      Category = "Education"
	CategoryShopping       Category = "Shopping"
	CategoryIncome         Category = "Income"
	CategoryOther          Category = "Other"
)

// Categories lists every valid category in presentation order.
var Categories = []Category{
	CategoryHousing,
	CategoryTransportation,
	CategoryFood,
	CategoryUtilities,
	CategoryHealthcare,
	CategoryEntertainment,
	CategoryEducation,
	CategoryShopping,
	CategoryIncome,
	CategoryOther,
}

// IsValidCategory reports whether the given category belongs to the fixed set.
func IsValidCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Transaction represents a single income or expense entry.
//
// Amount is always stored as a non-negative magnitude; the Type tag is the
// single source of truth for income/expense classification. Sign normalization
// happens at the write boundary.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        time.Time // date-only, midnight UTC
	Description string
	Category    Category
	Amount      decimal.Decimal
	Type        TransactionType
	Source      string // provenance marker for imported transactions, empty for manual entries
	CreatedAt   time.Time
}

// NewTransaction creates a new Transaction entity. The amount is normalized to
// its absolute value rounded to two decimal places, and the date is truncated
// to a date-only value.
func NewTransaction(
	userID uuid.UUID,
	date time.Time,
	description string,
	category Category,
	amount decimal.Decimal,
	transactionType TransactionType,
	source string,
) *Transaction {
	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        TruncateToDate(date),
		Description: description,
		Category:    category,
		Amount:      amount.Abs().Round(2),
		Type:        transactionType,
		Source:      source,
		CreatedAt:   time.Now().UTC(),
	}
}

// TruncateToDate drops the time-of-day component, keeping a UTC date.
func TruncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SignedAmount returns the conventional signed view of the amount: negative
// for expenses, positive for income.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}
