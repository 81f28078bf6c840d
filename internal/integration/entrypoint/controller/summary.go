// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/usecase/summary"
	domainerror "github.com/fintrack/backend/internal/domain/error"
	"github.com/fintrack/backend/internal/integration/entrypoint/dto"
)

// SummaryController handles monthly summary endpoints.
type SummaryController struct {
	userID      uuid.UUID
	listUseCase *summary.ListSummariesUseCase
	getUseCase  *summary.GetSummaryUseCase
}

// NewSummaryController creates a new summary controller instance.
func NewSummaryController(
	userID uuid.UUID,
	listUseCase *summary.ListSummariesUseCase,
	getUseCase *summary.GetSummaryUseCase,
) *SummaryController {
	return &SummaryController{
		userID:      userID,
		listUseCase: listUseCase,
		getUseCase:  getUseCase,
	}
}

// List handles GET /summaries requests.
func (c *SummaryController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), summary.ListSummariesInput{
		UserID: c.userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve summaries",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryListResponse(output.Summaries))
}

// Get handles GET /summaries/:year/:month requests.
func (c *SummaryController) Get(ctx *gin.Context) {
	year, month, ok := parseYearMonth(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid year or month",
			Code:  string(domainerror.ErrCodeInvalidMonth),
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), summary.GetSummaryInput{
		UserID: c.userID,
		Year:   year,
		Month:  month,
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrSummaryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "No summary for month",
				Code:  string(domainerror.ErrCodeSummaryNotFound),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.SummaryDetailResponse{
		Summary:    dto.ToSummaryResponse(output.Summary),
		Breakdowns: dto.ToBreakdownResponses(output.Breakdowns),
	})
}
