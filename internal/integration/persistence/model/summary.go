// Package model defines database models for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
)

// MonthlySummaryModel represents the monthly_summaries table in the database.
// The (user_id, year, month) triple is unique: summaries are upsert targets.
type MonthlySummaryModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_summary_user_month"`
	Year          int             `gorm:"not null;uniqueIndex:idx_summary_user_month"`
	Month         int             `gorm:"not null;uniqueIndex:idx_summary_user_month"`
	TotalIncome   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TotalExpenses decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	NetBalance    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	LastUpdated   time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the MonthlySummaryModel.
func (MonthlySummaryModel) TableName() string {
	return "monthly_summaries"
}

// ToEntity converts a MonthlySummaryModel to a domain MonthlySummary entity.
func (m *MonthlySummaryModel) ToEntity() *entity.MonthlySummary {
	return &entity.MonthlySummary{
		ID:            m.ID,
		UserID:        m.UserID,
		Year:          m.Year,
		Month:         m.Month,
		TotalIncome:   m.TotalIncome,
		TotalExpenses: m.TotalExpenses,
		NetBalance:    m.NetBalance,
		LastUpdated:   m.LastUpdated,
	}
}

// SummaryFromEntity creates a MonthlySummaryModel from a domain MonthlySummary entity.
func SummaryFromEntity(summary *entity.MonthlySummary) *MonthlySummaryModel {
	return &MonthlySummaryModel{
		ID:            summary.ID,
		UserID:        summary.UserID,
		Year:          summary.Year,
		Month:         summary.Month,
		TotalIncome:   summary.TotalIncome,
		TotalExpenses: summary.TotalExpenses,
		NetBalance:    summary.NetBalance,
		LastUpdated:   summary.LastUpdated,
	}
}

// CategoryBreakdownModel represents the category_breakdowns table in the database.
type CategoryBreakdownModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SummaryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Category   string          `gorm:"type:varchar(20);not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Percentage decimal.Decimal `gorm:"type:decimal(5,2);not null"`

	Summary *MonthlySummaryModel `gorm:"foreignKey:SummaryID;references:ID"`
}

// TableName returns the table name for the CategoryBreakdownModel.
func (CategoryBreakdownModel) TableName() string {
	return "category_breakdowns"
}

// ToEntity converts a CategoryBreakdownModel to a domain CategoryBreakdown entity.
func (m *CategoryBreakdownModel) ToEntity() *entity.CategoryBreakdown {
	return &entity.CategoryBreakdown{
		ID:         m.ID,
		SummaryID:  m.SummaryID,
		Category:   entity.Category(m.Category),
		Amount:     m.Amount,
		Percentage: m.Percentage,
	}
}

// BreakdownFromEntity creates a CategoryBreakdownModel from a domain CategoryBreakdown entity.
func BreakdownFromEntity(breakdown *entity.CategoryBreakdown) *CategoryBreakdownModel {
	return &CategoryBreakdownModel{
		ID:         breakdown.ID,
		SummaryID:  breakdown.SummaryID,
		Category:   string(breakdown.Category),
		Amount:     breakdown.Amount,
		Percentage: breakdown.Percentage,
	}
}
