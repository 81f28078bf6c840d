// Package summary contains monthly summary use cases.
package summary

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// GetSummaryInput identifies the month to fetch.
type GetSummaryInput struct {
	UserID uuid.UUID
	Year   int
	Month  int
}

// GetSummaryOutput carries the summary together with its breakdowns.
type GetSummaryOutput struct {
	Summary    *entity.MonthlySummary
	Breakdowns []*entity.CategoryBreakdown
}

// GetSummaryUseCase fetches one month's summary and breakdowns.
type GetSummaryUseCase struct {
	summaryRepo adapter.SummaryRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(summaryRepo adapter.SummaryRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		summaryRepo: summaryRepo,
	}
}

// Execute fetches the summary for the given month.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, domainerror.NewSummaryError(
			domainerror.ErrCodeInvalidMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidMonth,
		)
	}

	summary, err := uc.summaryRepo.FindByUserAndMonth(ctx, input.UserID, input.Year, input.Month)
	if err != nil {
		if errors.Is(err, domainerror.ErrSummaryNotFound) {
			return nil, domainerror.NewSummaryError(
				domainerror.ErrCodeSummaryNotFound,
				"no summary for month",
				domainerror.ErrSummaryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find summary: %w", err)
	}

	breakdowns, err := uc.summaryRepo.ListBreakdowns(ctx, summary.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list breakdowns: %w", err)
	}

	return &GetSummaryOutput{
		Summary:    summary,
		Breakdowns: breakdowns,
	}, nil
}
