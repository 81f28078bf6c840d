package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// summaryRepository implements adapter.SummaryRepository over the volatile store.
type summaryRepository struct {
	store *Store
}

// NewSummaryRepository creates a new volatile summary repository.
func NewSummaryRepository(store *Store) adapter.SummaryRepository {
	return &summaryRepository{store: store}
}

// FindByUser retrieves all summaries for a user, most recent month first.
func (r *summaryRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.MonthlySummary, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	summaries := make([]*entity.MonthlySummary, 0)
	for _, s := range r.store.summaries {
		if s.UserID == userID {
			summaries = append(summaries, copySummary(s))
		}
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		if summaries[i].Year != summaries[j].Year {
			return summaries[i].Year > summaries[j].Year
		}
		return summaries[i].Month > summaries[j].Month
	})
	return summaries, nil
}

// FindByUserAndMonth retrieves the summary for (user, year, month).
func (r *summaryRepository) FindByUserAndMonth(_ context.Context, userID uuid.UUID, year, month int) (*entity.MonthlySummary, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	s := r.findLocked(userID, year, month)
	if s == nil {
		return nil, domainerror.ErrSummaryNotFound
	}
	return copySummary(s), nil
}

// Upsert inserts the summary or overwrites the numeric fields of the existing
// one for the same (user, year, month), keeping its identifier.
func (r *summaryRepository) Upsert(_ context.Context, summary *entity.MonthlySummary) (*entity.MonthlySummary, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if existing := r.findLocked(summary.UserID, summary.Year, summary.Month); existing != nil {
		existing.TotalIncome = summary.TotalIncome
		existing.TotalExpenses = summary.TotalExpenses
		existing.NetBalance = summary.NetBalance
		existing.LastUpdated = time.Now().UTC()
		return copySummary(existing), nil
	}

	stored := copySummary(summary)
	r.store.summaries[stored.ID] = stored
	return copySummary(stored), nil
}

// ListBreakdowns retrieves all breakdowns owned by a summary.
func (r *summaryRepository) ListBreakdowns(_ context.Context, summaryID uuid.UUID) ([]*entity.CategoryBreakdown, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	breakdowns := make([]*entity.CategoryBreakdown, 0)
	for _, b := range r.store.breakdowns {
		if b.SummaryID == summaryID {
			breakdowns = append(breakdowns, copyBreakdown(b))
		}
	}
	sort.SliceStable(breakdowns, func(i, j int) bool {
		return breakdowns[i].Amount.GreaterThan(breakdowns[j].Amount)
	})
	return breakdowns, nil
}

// ReplaceBreakdowns deletes every breakdown owned by the summary and inserts
// the replacements under one lock acquisition.
func (r *summaryRepository) ReplaceBreakdowns(_ context.Context, summaryID uuid.UUID, breakdowns []*entity.CategoryBreakdown) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, b := range r.store.breakdowns {
		if b.SummaryID == summaryID {
			delete(r.store.breakdowns, id)
		}
	}
	for _, b := range breakdowns {
		r.store.breakdowns[b.ID] = copyBreakdown(b)
	}
	return nil
}

// findLocked looks up a summary by its unique key. Callers hold the lock.
func (r *summaryRepository) findLocked(userID uuid.UUID, year, month int) *entity.MonthlySummary {
	for _, s := range r.store.summaries {
		if s.UserID == userID && s.Year == year && s.Month == month {
			return s
		}
	}
	return nil
}
