// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/usecase/transaction"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
	"github.com/fintrack/backend/internal/integration/entrypoint/dto"
)

// dateLayout is the wire format for transaction dates.
const dateLayout = "2006-01-02"

// TransactionController handles transaction endpoints. All endpoints act on
// the demo user resolved at startup.
type TransactionController struct {
	userID           uuid.UUID
	listUseCase      *transaction.ListTransactionsUseCase
	listMonthUseCase *transaction.ListMonthTransactionsUseCase
	createUseCase    *transaction.CreateTransactionUseCase
	updateUseCase    *transaction.UpdateTransactionUseCase
	deleteUseCase    *transaction.DeleteTransactionUseCase
	exportUseCase    *transaction.ExportCSVUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	userID uuid.UUID,
	listUseCase *transaction.ListTransactionsUseCase,
	listMonthUseCase *transaction.ListMonthTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	exportUseCase *transaction.ExportCSVUseCase,
) *TransactionController {
	return &TransactionController{
		userID:           userID,
		listUseCase:      listUseCase,
		listMonthUseCase: listMonthUseCase,
		createUseCase:    createUseCase,
		updateUseCase:    updateUseCase,
		deleteUseCase:    deleteUseCase,
		exportUseCase:    exportUseCase,
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsInput{
		UserID: c.userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve transactions",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// ListMonth handles GET /transactions/month/:year/:month requests.
func (c *TransactionController) ListMonth(ctx *gin.Context) {
	year, month, ok := parseYearMonth(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid year or month",
			Code:  string(domainerror.ErrCodeInvalidMonth),
		})
		return
	}

	output, err := c.listMonthUseCase.Execute(ctx.Request.Context(), transaction.ListMonthTransactionsInput{
		UserID: c.userID,
		Year:   year,
		Month:  month,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve transactions",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidTransactionDate),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		UserID:      c.userID,
		Date:        date,
		Description: req.Description,
		Category:    entity.Category(req.Category),
		Amount:      decimal.NewFromFloat(req.Amount),
		Type:        entity.TransactionType(req.Type),
		Source:      req.Source,
	})
	if err != nil {
		c.respondError(ctx, err, "Failed to create transaction")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Update handles PUT /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Transaction not found",
			Code:  string(domainerror.ErrCodeTransactionNotFound),
		})
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	input := transaction.UpdateTransactionInput{
		TransactionID: id,
		UserID:        c.userID,
		Description:   req.Description,
	}

	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidTransactionDate),
			})
			return
		}
		input.Date = &date
	}
	if req.Category != nil {
		category := entity.Category(*req.Category)
		input.Category = &category
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.Type != nil {
		txnType := entity.TransactionType(*req.Type)
		input.Type = &txnType
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.respondError(ctx, err, "Failed to update transaction")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Transaction not found",
			Code:  string(domainerror.ErrCodeTransactionNotFound),
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		TransactionID: id,
		UserID:        c.userID,
	}); err != nil {
		c.respondError(ctx, err, "Failed to delete transaction")
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Export handles GET /export/:year/:month requests, returning the month's
// transactions as a CSV attachment.
func (c *TransactionController) Export(ctx *gin.Context) {
	year, month, ok := parseYearMonth(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid year or month",
			Code:  string(domainerror.ErrCodeInvalidMonth),
		})
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), transaction.ExportCSVInput{
		UserID: c.userID,
		Year:   year,
		Month:  month,
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrNoTransactionsForMonth) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "No transactions for month",
				Code:  string(domainerror.ErrCodeNoTransactionsForMonth),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to export transactions",
		})
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+output.Filename+`"`)
	ctx.Data(http.StatusOK, "text/csv", []byte(output.Content))
}

// respondError maps domain errors to HTTP status codes.
func (c *TransactionController) respondError(ctx *gin.Context, err error, fallback string) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		status := http.StatusBadRequest
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: fallback,
	})
}
