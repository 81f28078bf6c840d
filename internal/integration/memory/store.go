// Package memory implements the repository interfaces with in-process,
// map-backed storage. It is the volatile backend: selected at startup when no
// database connection string is configured, and used by the integration tests.
package memory

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/domain/entity"
)

// Store holds the shared maps behind the volatile repositories. One Store is
// created per process and handed to the repository constructors.
type Store struct {
	mu sync.RWMutex

	users        map[uuid.UUID]*entity.User
	transactions map[uuid.UUID]*entity.Transaction
	summaries    map[uuid.UUID]*entity.MonthlySummary
	breakdowns   map[uuid.UUID]*entity.CategoryBreakdown
}

// NewStore creates an empty volatile store.
func NewStore() *Store {
	return &Store{
		users:        make(map[uuid.UUID]*entity.User),
		transactions: make(map[uuid.UUID]*entity.Transaction),
		summaries:    make(map[uuid.UUID]*entity.MonthlySummary),
		breakdowns:   make(map[uuid.UUID]*entity.CategoryBreakdown),
	}
}

// sortTransactions orders transactions by date descending, then creation time
// descending, matching the durable backend's listing order.
func sortTransactions(txns []*entity.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		if !txns[i].Date.Equal(txns[j].Date) {
			return txns[i].Date.After(txns[j].Date)
		}
		return txns[i].CreatedAt.After(txns[j].CreatedAt)
	})
}

// copyTransaction returns a detached copy so callers cannot mutate stored state.
func copyTransaction(txn *entity.Transaction) *entity.Transaction {
	c := *txn
	return &c
}

func copyUser(user *entity.User) *entity.User {
	c := *user
	return &c
}

func copySummary(s *entity.MonthlySummary) *entity.MonthlySummary {
	c := *s
	return &c
}

func copyBreakdown(b *entity.CategoryBreakdown) *entity.CategoryBreakdown {
	c := *b
	return &c
}
