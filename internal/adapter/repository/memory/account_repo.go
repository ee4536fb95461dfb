package memory

import (
	"context"
	"sync"

	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/usecase"
)

// AccountRepository is an in-memory implementation of
// usecase.AccountRepository: a mutex-guarded map keyed by account ID.
// Entities are stored live; serialization of mutations on an entity is the
// use case's responsibility, the repository only guards its own index.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
	order    []string
}

// NewAccountRepository creates an empty in-memory account repository.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

// Create stores a new account. The ID must not already be in use.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.ID()]; ok {
		return usecase.ErrAccountExists
	}

	r.accounts[account.ID()] = account
	r.order = append(r.order, account.ID())

	return nil
}

// GetByID returns the live account entity for id.
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, usecase.ErrAccountNotFound
	}

	return account, nil
}

// List returns accounts in creation order.
func (r *AccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*domain.Account
	for i := offset; i < len(r.order) && len(result) < limit; i++ {
		result = append(result, r.accounts[r.order[i]])
	}

	return result, nil
}
