// Package summary contains monthly summary use cases.
package summary

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
)

// RecomputeInput identifies the month to recompute.
type RecomputeInput struct {
	UserID uuid.UUID
	Year   int
	Month  int
}

// RecomputeOutput carries the refreshed summary and its breakdowns.
type RecomputeOutput struct {
	Summary    *entity.MonthlySummary
	Breakdowns []*entity.CategoryBreakdown
}

// RecomputeUseCase derives the monthly summary and per-category expense
// breakdown from the month's transaction set and upserts the result.
//
// The output is a pure function of the transaction set (modulo LastUpdated):
// an empty month upserts a zeroed summary with an empty breakdown set rather
// than leaving a stale aggregate behind. Recomputes of the same month are
// serialized with a per-(user, year, month) mutex so two concurrent writes
// cannot interleave the upsert and the breakdown replacement.
type RecomputeUseCase struct {
	transactionRepo adapter.TransactionRepository
	summaryRepo     adapter.SummaryRepository

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewRecomputeUseCase creates a new RecomputeUseCase instance.
func NewRecomputeUseCase(
	transactionRepo adapter.TransactionRepository,
	summaryRepo adapter.SummaryRepository,
) *RecomputeUseCase {
	return &RecomputeUseCase{
		transactionRepo: transactionRepo,
		summaryRepo:     summaryRepo,
		locks:           make(map[string]*sync.Mutex),
	}
}

// Execute recomputes the summary and breakdowns for the given month.
func (uc *RecomputeUseCase) Execute(ctx context.Context, input RecomputeInput) (*RecomputeOutput, error) {
	lock := uc.monthLock(input)
	lock.Lock()
	defer lock.Unlock()

	transactions, err := uc.transactionRepo.FindByUserAndMonth(ctx, input.UserID, input.Year, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for recompute: %w", err)
	}

	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero
	expensesByCategory := make(map[entity.Category]decimal.Decimal)

	for _, txn := range transactions {
		switch txn.Type {
		case entity.TransactionTypeIncome:
			totalIncome = totalIncome.Add(txn.Amount)
		case entity.TransactionTypeExpense:
			totalExpenses = totalExpenses.Add(txn.Amount)
			expensesByCategory[txn.Category] = expensesByCategory[txn.Category].Add(txn.Amount)
		}
	}

	stored, err := uc.summaryRepo.Upsert(ctx, entity.NewMonthlySummary(
		input.UserID,
		input.Year,
		input.Month,
		totalIncome,
		totalExpenses,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert summary: %w", err)
	}

	breakdowns := buildBreakdowns(stored.ID, expensesByCategory, totalExpenses)

	if err := uc.summaryRepo.ReplaceBreakdowns(ctx, stored.ID, breakdowns); err != nil {
		return nil, fmt.Errorf("failed to replace breakdowns: %w", err)
	}

	slog.Debug("Recomputed monthly summary",
		"userID", input.UserID,
		"year", input.Year,
		"month", input.Month,
		"totalIncome", stored.TotalIncome,
		"totalExpenses", stored.TotalExpenses,
		"categories", len(breakdowns),
	)

	return &RecomputeOutput{
		Summary:    stored,
		Breakdowns: breakdowns,
	}, nil
}

// buildBreakdowns turns the per-category expense totals into breakdown rows.
// Categories with zero expense are omitted; when totalExpenses is zero the
// result is empty, avoiding the percentage division.
func buildBreakdowns(
	summaryID uuid.UUID,
	expensesByCategory map[entity.Category]decimal.Decimal,
	totalExpenses decimal.Decimal,
) []*entity.CategoryBreakdown {
	breakdowns := make([]*entity.CategoryBreakdown, 0, len(expensesByCategory))
	if totalExpenses.IsZero() {
		return breakdowns
	}

	hundred := decimal.NewFromInt(100)
	// Iterate the fixed category order so repeated recomputes produce the
	// same row order.
	for _, category := range entity.Categories {
		amount, ok := expensesByCategory[category]
		if !ok || amount.IsZero() {
			continue
		}
		percentage := amount.Mul(hundred).Div(totalExpenses).Round(2)
		breakdowns = append(breakdowns, entity.NewCategoryBreakdown(summaryID, category, amount, percentage))
	}
	return breakdowns
}

// monthLock returns the mutex guarding one (user, year, month) key.
func (uc *RecomputeUseCase) monthLock(input RecomputeInput) *sync.Mutex {
	key := fmt.Sprintf("%s/%04d-%02d", input.UserID, input.Year, input.Month)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	lock, ok := uc.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		uc.locks[key] = lock
	}
	return lock
}
