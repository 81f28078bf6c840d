// Package summary contains monthly summary use cases.
package summary

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
)

// ListSummariesInput identifies the user whose summaries are listed.
type ListSummariesInput struct {
	UserID uuid.UUID
}

// ListSummariesOutput carries all summaries for a user.
type ListSummariesOutput struct {
	Summaries []*entity.MonthlySummary
}

// ListSummariesUseCase lists every monthly summary for a user.
type ListSummariesUseCase struct {
	summaryRepo adapter.SummaryRepository
}

// NewListSummariesUseCase creates a new ListSummariesUseCase instance.
func NewListSummariesUseCase(summaryRepo adapter.SummaryRepository) *ListSummariesUseCase {
	return &ListSummariesUseCase{
		summaryRepo: summaryRepo,
	}
}

// Execute lists the user's summaries, most recent month first.
func (uc *ListSummariesUseCase) Execute(ctx context.Context, input ListSummariesInput) (*ListSummariesOutput, error) {
	summaries, err := uc.summaryRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list summaries: %w", err)
	}

	return &ListSummariesOutput{Summaries: summaries}, nil
}
