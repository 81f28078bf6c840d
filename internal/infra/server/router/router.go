// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/fintrack/backend/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	transactionController *controller.TransactionController
	summaryController     *controller.SummaryController
	statementController   *controller.StatementController
	categoryController    *controller.CategoryController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	transactionController *controller.TransactionController,
	summaryController *controller.SummaryController,
	statementController *controller.StatementController,
	categoryController *controller.CategoryController,
) *Router {
	return &Router{
		healthController:      healthController,
		transactionController: transactionController,
		summaryController:     summaryController,
		statementController:   statementController,
		categoryController:    categoryController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.engine.GET("/health", r.healthController.Check)

	transactions := r.engine.Group("/transactions")
	{
		transactions.GET("", r.transactionController.List)
		transactions.GET("/month/:year/:month", r.transactionController.ListMonth)
		transactions.POST("", r.transactionController.Create)
		transactions.PUT("/:id", r.transactionController.Update)
		transactions.DELETE("/:id", r.transactionController.Delete)
	}

	summaries := r.engine.Group("/summaries")
	{
		summaries.GET("", r.summaryController.List)
		summaries.GET("/:year/:month", r.summaryController.Get)
	}

	r.engine.POST("/upload-statement", r.statementController.Upload)
	r.engine.GET("/categories", r.categoryController.List)
	r.engine.GET("/export/:year/:month", r.transactionController.Export)

	return r.engine
}
