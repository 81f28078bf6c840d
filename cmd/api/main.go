// Package main is the entry point for the FinTrack API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fintrack/backend/config"
	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/application/usecase/statement"
	"github.com/fintrack/backend/internal/application/usecase/summary"
	"github.com/fintrack/backend/internal/application/usecase/transaction"
	"github.com/fintrack/backend/internal/application/usecase/user"
	"github.com/fintrack/backend/internal/infra/db"
	"github.com/fintrack/backend/internal/infra/server/router"
	"github.com/fintrack/backend/internal/integration/adapters"
	"github.com/fintrack/backend/internal/integration/entrypoint/controller"
	"github.com/fintrack/backend/internal/integration/memory"
	"github.com/fintrack/backend/internal/integration/persistence"
	"github.com/fintrack/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting FinTrack API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Select the store backend. DATABASE_URL set means durable PostgreSQL;
	// absent or unreachable falls back to the volatile in-memory store.
	var userRepo adapter.UserRepository
	var transactionRepo adapter.TransactionRepository
	var summaryRepo adapter.SummaryRepository
	var storeHealthChecker func() bool

	var database *db.Database
	if cfg.Database.URL != "" {
		var err error
		database, err = db.NewPostgresConnection(&cfg.Database)
		if err != nil {
			slog.Warn("Database connection failed, falling back to volatile store", "error", err)
			database = nil
		}
	}

	if database != nil {
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()

		if err := database.AutoMigrate(
			&model.UserModel{},
			&model.TransactionModel{},
			&model.MonthlySummaryModel{},
			&model.CategoryBreakdownModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		userRepo = persistence.NewUserRepository(database.DB())
		transactionRepo = persistence.NewTransactionRepository(database.DB())
		summaryRepo = persistence.NewSummaryRepository(database.DB())
		storeHealthChecker = database.HealthCheck

		slog.Info("Using durable PostgreSQL store")
	} else {
		store := memory.NewStore()
		userRepo = memory.NewUserRepository(store)
		transactionRepo = memory.NewTransactionRepository(store)
		summaryRepo = memory.NewSummaryRepository(store)
		storeHealthChecker = func() bool { return true }

		slog.Info("Using volatile in-memory store, data is lost on restart")
	}

	// Resolve the demo user every request operates on
	passwordService := adapters.NewPasswordService()
	ensureDemoUser := user.NewEnsureDemoUserUseCase(userRepo, passwordService)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	demoOutput, err := ensureDemoUser.Execute(ctx, user.EnsureDemoUserInput{
		Username: cfg.Demo.Username,
		Password: cfg.Demo.Password,
	})
	cancel()
	if err != nil {
		slog.Error("Failed to resolve demo user", "error", err)
		os.Exit(1)
	}
	demoUserID := demoOutput.User.ID

	// Create use cases
	recomputeUseCase := summary.NewRecomputeUseCase(transactionRepo, summaryRepo)
	listSummariesUseCase := summary.NewListSummariesUseCase(summaryRepo)
	getSummaryUseCase := summary.NewGetSummaryUseCase(summaryRepo)

	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	listMonthTransactionsUseCase := transaction.NewListMonthTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, recomputeUseCase)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, recomputeUseCase)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, recomputeUseCase)
	exportCSVUseCase := transaction.NewExportCSVUseCase(transactionRepo)

	importStatementUseCase := statement.NewImportStatementUseCase(createTransactionUseCase, getSummaryUseCase)

	// Create controllers
	healthController := controller.NewHealthController(storeHealthChecker)
	transactionController := controller.NewTransactionController(
		demoUserID,
		listTransactionsUseCase,
		listMonthTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		exportCSVUseCase,
	)
	summaryController := controller.NewSummaryController(demoUserID, listSummariesUseCase, getSummaryUseCase)
	statementController := controller.NewStatementController(demoUserID, importStatementUseCase)
	categoryController := controller.NewCategoryController()

	// Setup router
	r := router.NewRouter(
		healthController,
		transactionController,
		summaryController,
		statementController,
		categoryController,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
