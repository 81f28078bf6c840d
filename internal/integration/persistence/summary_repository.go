// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
	"github.com/fintrack/backend/internal/integration/persistence/model"
)

// summaryRepository implements the adapter.SummaryRepository interface.
type summaryRepository struct {
	db *gorm.DB
}

// NewSummaryRepository creates a new summary repository instance.
func NewSummaryRepository(db *gorm.DB) adapter.SummaryRepository {
	return &summaryRepository{
		db: db,
	}
}

// FindByUser retrieves all summaries for a user, most recent month first.
func (r *summaryRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.MonthlySummary, error) {
	var summaryModels []model.MonthlySummaryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("year DESC, month DESC").
		Find(&summaryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	summaries := make([]*entity.MonthlySummary, len(summaryModels))
	for i, sm := range summaryModels {
		summaries[i] = sm.ToEntity()
	}
	return summaries, nil
}

// FindByUserAndMonth retrieves the summary for (user, year, month).
func (r *summaryRepository) FindByUserAndMonth(ctx context.Context, userID uuid.UUID, year, month int) (*entity.MonthlySummary, error) {
	var summaryModel model.MonthlySummaryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND year = ? AND month = ?", userID, year, month).
		First(&summaryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSummaryNotFound
		}
		return nil, result.Error
	}
	return summaryModel.ToEntity(), nil
}

// Upsert inserts the summary, or overwrites the numeric fields of the existing
// row for the same (user, year, month) while keeping its identifier.
func (r *summaryRepository) Upsert(ctx context.Context, summary *entity.MonthlySummary) (*entity.MonthlySummary, error) {
	var stored *entity.MonthlySummary

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.MonthlySummaryModel
		result := tx.
			Where("user_id = ? AND year = ? AND month = ?", summary.UserID, summary.Year, summary.Month).
			First(&existing)

		if result.Error != nil {
			if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return result.Error
			}
			summaryModel := model.SummaryFromEntity(summary)
			if err := tx.Create(summaryModel).Error; err != nil {
				return err
			}
			stored = summaryModel.ToEntity()
			return nil
		}

		updates := map[string]interface{}{
			"total_income":   summary.TotalIncome,
			"total_expenses": summary.TotalExpenses,
			"net_balance":    summary.NetBalance,
			"last_updated":   time.Now().UTC(),
		}
		if err := tx.Model(&existing).Updates(updates).Error; err != nil {
			return err
		}
		stored = existing.ToEntity()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// ListBreakdowns retrieves all category breakdowns owned by a summary.
func (r *summaryRepository) ListBreakdowns(ctx context.Context, summaryID uuid.UUID) ([]*entity.CategoryBreakdown, error) {
	var breakdownModels []model.CategoryBreakdownModel
	result := r.db.WithContext(ctx).
		Where("summary_id = ?", summaryID).
		Order("amount DESC").
		Find(&breakdownModels)
	if result.Error != nil {
		return nil, result.Error
	}

	breakdowns := make([]*entity.CategoryBreakdown, len(breakdownModels))
	for i, bm := range breakdownModels {
		breakdowns[i] = bm.ToEntity()
	}
	return breakdowns, nil
}

// ReplaceBreakdowns deletes every breakdown owned by the summary and inserts
// the replacements inside one database transaction.
func (r *summaryRepository) ReplaceBreakdowns(ctx context.Context, summaryID uuid.UUID, breakdowns []*entity.CategoryBreakdown) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("summary_id = ?", summaryID).Delete(&model.CategoryBreakdownModel{}).Error; err != nil {
			return err
		}

		if len(breakdowns) == 0 {
			return nil
		}

		breakdownModels := make([]model.CategoryBreakdownModel, len(breakdowns))
		for i, b := range breakdowns {
			breakdownModels[i] = *model.BreakdownFromEntity(b)
		}
		return tx.Create(&breakdownModels).Error
	})
}
