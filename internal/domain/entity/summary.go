// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlySummary is the derived aggregate for one (user, year, month).
//
// Summaries hold no information that is not reconstructible from the month's
// transaction set: they are a disposable cache maintained by the recompute
// use case, never written directly by a user action.
type MonthlySummary struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Year          int
	Month         int // 1-12
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetBalance    decimal.Decimal
	LastUpdated   time.Time
}

// NewMonthlySummary creates a new MonthlySummary entity.
func NewMonthlySummary(userID uuid.UUID, year, month int, totalIncome, totalExpenses decimal.Decimal) *MonthlySummary {
	return &MonthlySummary{
		ID:            uuid.New(),
		UserID:        userID,
		Year:          year,
		Month:         month,
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		NetBalance:    totalIncome.Sub(totalExpenses),
		LastUpdated:   time.Now().UTC(),
	}
}

// CategoryBreakdown is one category's share of a summary's total expenses.
// A summary owns one breakdown per category with nonzero expense that month;
// the full set is replaced on every recompute.
type CategoryBreakdown struct {
	ID         uuid.UUID
	SummaryID  uuid.UUID
	Category   Category
	Amount     decimal.Decimal
	Percentage decimal.Decimal // share of total expenses, 0-100, two decimal places
}

// NewCategoryBreakdown creates a new CategoryBreakdown entity.
func NewCategoryBreakdown(summaryID uuid.UUID, category Category, amount, percentage decimal.Decimal) *CategoryBreakdown {
	return &CategoryBreakdown{
		ID:         uuid.New(),
		SummaryID:  summaryID,
		Category:   category,
		Amount:     amount,
		Percentage: percentage,
	}
}
