package port

import (
	"context"

	"github.com/tokogrand/pos-register/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// LedgerPort is the narrow accessor over the persisted stock ledger. It is
// the single source of truth for stock; cart-held quantities are volatile
// reservations on top of it.
type LedgerPort interface {
	Insert(ctx context.Context, product *domain.Product) error
	GetBySKU(ctx context.Context, sku string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Search(ctx context.Context, term string) ([]*domain.Product, error)
	UpdateStock(ctx context.Context, sku string, stock int) error
	DeductStock(ctx context.Context, sku string, quantity int) error
	Delete(ctx context.Context, sku string) error
	ListLowStock(ctx context.Context, threshold int) ([]*domain.Product, error)
}
