package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fintrack/backend/internal/domain/entity"
	"github.com/fintrack/backend/internal/integration/persistence/model"
)

// openTestDB opens a throwaway in-memory SQLite database with the full schema
// migrated. A single connection keeps the in-memory database alive for the
// whole test.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.TransactionModel{},
		&model.MonthlySummaryModel{},
		&model.CategoryBreakdownModel{},
	); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

// seedUser inserts a user row to satisfy the foreign keys on transactions and
// summaries.
func seedUser(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()

	user := entity.NewUser("test-user-"+uuid.NewString()[:8], "hash")
	repo := NewUserRepository(db)
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user.ID
}
