// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/domain/entity"
)

// SummaryRepository defines the interface for monthly summary and category
// breakdown persistence operations.
type SummaryRepository interface {
	// FindByUser retrieves all summaries for a user, most recent month first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.MonthlySummary, error)

	// FindByUserAndMonth retrieves the summary for (user, year, month).
	// Returns domain ErrSummaryNotFound when absent.
	FindByUserAndMonth(ctx context.Context, userID uuid.UUID, year, month int) (*entity.MonthlySummary, error)

	// Upsert inserts the summary, or, when one already exists for the same
	// (user, year, month), overwrites its numeric fields and refreshes the
	// LastUpdated timestamp while keeping the existing identifier.
	// Returns the stored summary.
	Upsert(ctx context.Context, summary *entity.MonthlySummary) (*entity.MonthlySummary, error)

	// ListBreakdowns retrieves all category breakdowns owned by a summary.
	ListBreakdowns(ctx context.Context, summaryID uuid.UUID) ([]*entity.CategoryBreakdown, error)

	// ReplaceBreakdowns deletes every breakdown owned by the summary and
	// inserts the replacements as one atomic operation.
	ReplaceBreakdowns(ctx context.Context, summaryID uuid.UUID, breakdowns []*entity.CategoryBreakdown) error
}
