// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/fintrack/backend/internal/domain/entity"
)

// SummaryResponse represents a monthly summary in API responses.
type SummaryResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Year          int       `json:"year"`
	Month         int       `json:"month"`
	TotalIncome   string    `json:"total_income"`
	TotalExpenses string    `json:"total_expenses"`
	NetBalance    string    `json:"net_balance"`
	LastUpdated   time.Time `json:"last_updated"`
}

// BreakdownResponse represents a category breakdown in API responses.
type BreakdownResponse struct {
	ID         string `json:"id"`
	SummaryID  string `json:"summary_id"`
	Category   string `json:"category"`
	Amount     string `json:"amount"`
	Percentage string `json:"percentage"`
}

// SummaryDetailResponse pairs a summary with its breakdowns.
type SummaryDetailResponse struct {
	Summary    SummaryResponse     `json:"summary"`
	Breakdowns []BreakdownResponse `json:"breakdowns"`
}

// SummaryListResponse represents the response for listing summaries.
type SummaryListResponse struct {
	Summaries []SummaryResponse `json:"summaries"`
}

// ToSummaryResponse converts a MonthlySummary entity to a SummaryResponse DTO.
func ToSummaryResponse(s *entity.MonthlySummary) SummaryResponse {
	return SummaryResponse{
		ID:            s.ID.String(),
		UserID:        s.UserID.String(),
		Year:          s.Year,
		Month:         s.Month,
		TotalIncome:   s.TotalIncome.StringFixed(2),
		TotalExpenses: s.TotalExpenses.StringFixed(2),
		NetBalance:    s.NetBalance.StringFixed(2),
		LastUpdated:   s.LastUpdated,
	}
}

// ToBreakdownResponses converts CategoryBreakdown entities to DTOs.
func ToBreakdownResponses(breakdowns []*entity.CategoryBreakdown) []BreakdownResponse {
	responses := make([]BreakdownResponse, len(breakdowns))
	for i, b := range breakdowns {
		responses[i] = BreakdownResponse{
			ID:         b.ID.String(),
			SummaryID:  b.SummaryID.String(),
			Category:   string(b.Category),
			Amount:     b.Amount.StringFixed(2),
			Percentage: b.Percentage.StringFixed(2),
		}
	}
	return responses
}

// ToSummaryListResponse converts MonthlySummary entities to a list response DTO.
func ToSummaryListResponse(summaries []*entity.MonthlySummary) SummaryListResponse {
	responses := make([]SummaryResponse, len(summaries))
	for i, s := range summaries {
		responses[i] = ToSummaryResponse(s)
	}
	return SummaryListResponse{Summaries: responses}
}
