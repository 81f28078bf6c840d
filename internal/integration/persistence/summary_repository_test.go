package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

func TestSummaryRepository_Upsert(t *testing.T) {
	db := openTestDB(t)
	repo := NewSummaryRepository(db)
	userID := seedUser(t, db)

	t.Run("inserts then overwrites keeping the row identity", func(t *testing.T) {
		first, err := repo.Upsert(context.Background(), entity.NewMonthlySummary(
			userID, 2024, 3,
			decimal.RequireFromString("1000"),
			decimal.RequireFromString("200"),
		))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		second, err := repo.Upsert(context.Background(), entity.NewMonthlySummary(
			userID, 2024, 3,
			decimal.RequireFromString("1500"),
			decimal.RequireFromString("600"),
		))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if second.ID != first.ID {
			t.Errorf("expected the same row, got %s then %s", first.ID, second.ID)
		}

		stored, err := repo.FindByUserAndMonth(context.Background(), userID, 2024, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !stored.TotalIncome.Equal(decimal.RequireFromString("1500")) {
			t.Errorf("expected overwritten income 1500, got %s", stored.TotalIncome)
		}
		if !stored.NetBalance.Equal(decimal.RequireFromString("900")) {
			t.Errorf("expected net balance 900, got %s", stored.NetBalance)
		}
	})

	t.Run("missing months report not found", func(t *testing.T) {
		if _, err := repo.FindByUserAndMonth(context.Background(), userID, 2030, 1); !errors.Is(err, domainerror.ErrSummaryNotFound) {
			t.Errorf("expected ErrSummaryNotFound, got %v", err)
		}
	})
}

func TestSummaryRepository_FindByUser(t *testing.T) {
	db := openTestDB(t)
	repo := NewSummaryRepository(db)
	userID := seedUser(t, db)

	months := []struct{ year, month int }{
		{2023, 11}, {2024, 2}, {2024, 1},
	}
	for _, m := range months {
		if _, err := repo.Upsert(context.Background(), entity.NewMonthlySummary(
			userID, m.year, m.month, decimal.Zero, decimal.Zero,
		)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	all, err := repo.FindByUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []struct{ year, month int }{
		{2024, 2}, {2024, 1}, {2023, 11},
	}
	if len(all) != len(want) {
		t.Fatalf("expected %d summaries, got %d", len(want), len(all))
	}
	for i, s := range all {
		if s.Year != want[i].year || s.Month != want[i].month {
			t.Errorf("position %d: expected %d-%d, got %d-%d", i, want[i].year, want[i].month, s.Year, s.Month)
		}
	}
}

func TestSummaryRepository_ReplaceBreakdowns(t *testing.T) {
	db := openTestDB(t)
	repo := NewSummaryRepository(db)
	userID := seedUser(t, db)

	stored, err := repo.Upsert(context.Background(), entity.NewMonthlySummary(
		userID, 2024, 3,
		decimal.RequireFromString("1000"),
		decimal.RequireFromString("700"),
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	initial := []*entity.CategoryBreakdown{
		entity.NewCategoryBreakdown(stored.ID, entity.CategoryFood,
			decimal.RequireFromString("200"), decimal.RequireFromString("28.57")),
		entity.NewCategoryBreakdown(stored.ID, entity.CategoryHousing,
			decimal.RequireFromString("500"), decimal.RequireFromString("71.43")),
	}
	if err := repo.ReplaceBreakdowns(context.Background(), stored.ID, initial); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	replacement := []*entity.CategoryBreakdown{
		entity.NewCategoryBreakdown(stored.ID, entity.CategoryUtilities,
			decimal.RequireFromString("700"), decimal.RequireFromString("100")),
	}
	if err := repo.ReplaceBreakdowns(context.Background(), stored.ID, replacement); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	breakdowns, err := repo.ListBreakdowns(context.Background(), stored.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(breakdowns) != 1 {
		t.Fatalf("expected the old set replaced, got %d rows", len(breakdowns))
	}
	if breakdowns[0].Category != entity.CategoryUtilities {
		t.Errorf("expected Utilities breakdown, got %s", breakdowns[0].Category)
	}

	t.Run("replacing with an empty set clears everything", func(t *testing.T) {
		if err := repo.ReplaceBreakdowns(context.Background(), stored.ID, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		breakdowns, err := repo.ListBreakdowns(context.Background(), stored.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(breakdowns) != 0 {
			t.Errorf("expected no breakdowns, got %d", len(breakdowns))
		}
	})
}

func TestUserRepository_Persistence(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)

	t.Run("enforces username uniqueness", func(t *testing.T) {
		if err := repo.Create(context.Background(), entity.NewUser("demo", "hash")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		err := repo.Create(context.Background(), entity.NewUser("demo", "other"))
		if !errors.Is(err, domainerror.ErrUsernameTaken) {
			t.Errorf("expected ErrUsernameTaken, got %v", err)
		}
	})

	t.Run("finds users by username", func(t *testing.T) {
		user := entity.NewUser("lookup", "hash")
		if err := repo.Create(context.Background(), user); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByUsername(context.Background(), "lookup")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.ID != user.ID {
			t.Errorf("expected user %s, got %s", user.ID, found.ID)
		}
	})

	t.Run("missing users report not found", func(t *testing.T) {
		if _, err := repo.FindByID(context.Background(), uuid.New()); !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}
