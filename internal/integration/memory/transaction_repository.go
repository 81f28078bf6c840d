package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// transactionRepository implements adapter.TransactionRepository over the
// volatile store.
type transactionRepository struct {
	store *Store
}

// NewTransactionRepository creates a new volatile transaction repository.
func NewTransactionRepository(store *Store) adapter.TransactionRepository {
	return &transactionRepository{store: store}
}

// Create creates a new transaction.
func (r *transactionRepository) Create(_ context.Context, transaction *entity.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.transactions[transaction.ID] = copyTransaction(transaction)
	return nil
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	txn, ok := r.store.transactions[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	return copyTransaction(txn), nil
}

// FindByUser retrieves all transactions for a user, newest first.
func (r *transactionRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	txns := make([]*entity.Transaction, 0)
	for _, txn := range r.store.transactions {
		if txn.UserID == userID {
			txns = append(txns, copyTransaction(txn))
		}
	}
	sortTransactions(txns)
	return txns, nil
}

// FindByUserAndMonth retrieves the user's transactions within the month.
func (r *transactionRepository) FindByUserAndMonth(_ context.Context, userID uuid.UUID, year, month int) ([]*entity.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	txns := make([]*entity.Transaction, 0)
	for _, txn := range r.store.transactions {
		if txn.UserID != userID {
			continue
		}
		if txn.Date.Year() == year && int(txn.Date.Month()) == month {
			txns = append(txns, copyTransaction(txn))
		}
	}
	sortTransactions(txns)
	return txns, nil
}

// Update overwrites an existing transaction.
func (r *transactionRepository) Update(_ context.Context, transaction *entity.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.transactions[transaction.ID]; !ok {
		return domainerror.ErrTransactionNotFound
	}
	r.store.transactions[transaction.ID] = copyTransaction(transaction)
	return nil
}

// Delete removes a transaction.
func (r *transactionRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.transactions[id]; !ok {
		return domainerror.ErrTransactionNotFound
	}
	delete(r.store.transactions, id)
	return nil
}
