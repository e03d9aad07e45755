package port

import (
	"context"

	"github.com/tokogrand/pos-register/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// SalePort appends immutable sale records. Append stores the sale together
// with its outbox entry in one write so the event cannot outrun or miss
// the record.
type SalePort interface {
	Append(ctx context.Context, sale *domain.Sale, event domain.Event) error
	GetByTransactionID(ctx context.Context, transactionID string) (*domain.Sale, error)
	List(ctx context.Context, limit, offset int64) ([]*domain.Sale, error)
}
