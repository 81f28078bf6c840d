// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fintrack/backend/internal/domain/entity"
	"github.com/fintrack/backend/internal/integration/entrypoint/dto"
)

// CategoryController serves the fixed category enumeration.
type CategoryController struct{}

// NewCategoryController creates a new category controller instance.
func NewCategoryController() *CategoryController {
	return &CategoryController{}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	categories := make([]string, len(entity.Categories))
	for i, category := range entity.Categories {
		categories[i] = string(category)
	}

	ctx.JSON(http.StatusOK, dto.CategoryListResponse{Categories: categories})
}
