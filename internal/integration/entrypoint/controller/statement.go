// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/usecase/statement"
	domainerror "github.com/fintrack/backend/internal/domain/error"
	"github.com/fintrack/backend/internal/integration/entrypoint/dto"
)

// StatementController handles statement upload endpoints.
type StatementController struct {
	userID        uuid.UUID
	importUseCase *statement.ImportStatementUseCase
}

// NewStatementController creates a new statement controller instance.
func NewStatementController(userID uuid.UUID, importUseCase *statement.ImportStatementUseCase) *StatementController {
	return &StatementController{
		userID:        userID,
		importUseCase: importUseCase,
	}
}

// Upload handles POST /upload-statement requests.
func (c *StatementController) Upload(ctx *gin.Context) {
	var req dto.UploadStatementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidStatementContent),
		})
		return
	}

	output, err := c.importUseCase.Execute(ctx.Request.Context(), statement.ImportStatementInput{
		UserID:   c.userID,
		Content:  req.Content,
		Filename: req.Filename,
	})
	if err != nil {
		var stmErr *domainerror.StatementError
		if errors.As(err, &stmErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: stmErr.Message,
				Code:  string(stmErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to import statement",
		})
		return
	}

	response := dto.UploadStatementResponse{
		Transactions: dto.ToTransactionListResponse(output.Transactions).Transactions,
	}
	if output.Summary != nil {
		summaryResp := dto.ToSummaryResponse(output.Summary)
		response.Summary = &summaryResp
		response.Breakdowns = dto.ToBreakdownResponses(output.Breakdowns)
	}

	ctx.JSON(http.StatusCreated, response)
}
