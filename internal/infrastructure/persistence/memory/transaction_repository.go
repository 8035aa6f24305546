package memory

import (
	"context"
	"sync"

	"github.com/craftcms/commerce-paypal-checkout/internal/domain"
	"github.com/craftcms/commerce-paypal-checkout/internal/infrastructure/persistence"
)

// TransactionRepository is an in-memory store used in tests and when running
// without a database.
type TransactionRepository struct {
	mu     sync.RWMutex
	byID   map[string]*domain.Transaction
	byHash map[string]*domain.Transaction
}

func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{
		byID:   make(map[string]*domain.Transaction),
		byHash: make(map[string]*domain.Transaction),
	}
}

func (r *TransactionRepository) Create(_ context.Context, transaction *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[transaction.ID] = transaction
	r.byHash[transaction.Hash] = transaction
	return nil
}

func (r *TransactionRepository) FindByHash(_ context.Context, hash string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	transaction, ok := r.byHash[hash]
	if !ok {
		return nil, persistence.ErrTransactionNotFound
	}
	return transaction, nil
}

func (r *TransactionRepository) AttachResponse(_ context.Context, id string, reference string, response []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	transaction, ok := r.byID[id]
	if !ok {
		return persistence.ErrTransactionNotFound
	}
	transaction.Reference = reference
	transaction.Response = response
	return nil
}
