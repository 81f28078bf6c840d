// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
//
// Both backends return user-scoped listings ordered by date descending, then
// creation time descending. The ordering is part of the contract.
type TransactionRepository interface {
	// Create creates a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	// Returns domain ErrTransactionNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByUser retrieves all transactions for a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// FindByUserAndMonth retrieves the user's transactions whose date falls
	// within [first day, last day] of the given month, inclusive.
	FindByUserAndMonth(ctx context.Context, userID uuid.UUID, year, month int) ([]*entity.Transaction, error)

	// Update overwrites an existing transaction.
	// Returns domain ErrTransactionNotFound when absent.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction.
	// Returns domain ErrTransactionNotFound when absent.
	Delete(ctx context.Context, id uuid.UUID) error
}
