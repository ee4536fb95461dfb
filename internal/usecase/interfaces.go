package usecase

import (
	"context"

	"github.com/iho/minibank/internal/domain"
)

// AccountRepository defines storage for account entities. Implementations
// return the live entity; the use case serializes access to it.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
}

// IDGenerator generates unique IDs for transfer receipts.
type IDGenerator interface {
	Generate() string
}
