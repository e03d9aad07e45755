package service

import (
	"context"
	"time"

	"github.com/tokogrand/pos-register/internal/core/domain"
	"github.com/tokogrand/pos-register/internal/core/logger"
	"github.com/tokogrand/pos-register/internal/core/port"
	"github.com/tokogrand/pos-register/internal/core/serviceerrors"
	"github.com/tokogrand/pos-register/internal/core/utils"
)

// CheckoutService is the transaction committer. A commit runs two full
// passes over the cart: validation re-reads every line's ledger stock and
// aborts the whole commit on the first shortfall, leaving the cart
// intact; only a fully validated cart enters the applying phase, where
// the per-line decrements and the sale append share one storage
// transaction, so partially written commits cannot appear in the ledger.
type CheckoutService struct {
	registers         *RegisterService
	products          *ProductService
	ledger            port.LedgerPort
	sales             port.SalePort
	txManager         port.TransactionManager
	receipts          *ReceiptService
	broker            port.BrokerPort
	idempotency       *IdempotencyService[domain.Sale]
	lowStockThreshold int
	now               func() time.Time
}

func NewCheckoutService(
	registers *RegisterService,
	products *ProductService,
	ledger port.LedgerPort,
	sales port.SalePort,
	txManager port.TransactionManager,
	receipts *ReceiptService,
	broker port.BrokerPort,
	idempotency *IdempotencyService[domain.Sale],
	lowStockThreshold int,
) *CheckoutService {
	if lowStockThreshold <= 0 {
		lowStockThreshold = DefaultLowStockThreshold
	}
	return &CheckoutService{
		registers:         registers,
		products:          products,
		ledger:            ledger,
		sales:             sales,
		txManager:         txManager,
		receipts:          receipts,
		broker:            broker,
		idempotency:       idempotency,
		lowStockThreshold: lowStockThreshold,
		now:               time.Now,
	}
}

type checkoutPayload struct {
	RegisterID string            `json:"register_id"`
	Lines      []domain.CartLine `json:"lines"`
}

// Checkout completes the transaction for a register. An Idempotency-Key
// makes a double-submitted "complete transaction" return the first
// commit's sale instead of committing twice.
func (s *CheckoutService) Checkout(ctx context.Context, registerID, idempotencyKey string) (*domain.Sale, error) {
	if idempotencyKey == "" {
		return s.commit(ctx, registerID)
	}

	payloadHash := utils.HashJSON(checkoutPayload{
		RegisterID: registerID,
		Lines:      s.registers.GetCart(ctx, registerID).Lines,
	})

	existing, err := s.idempotency.Claim(ctx, idempotencyKey, payloadHash)
	if err != nil {
		logger.Error(ctx, "idempotency: claim failed", err, map[string]any{
			"idempotency_key": idempotencyKey,
		})
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	sale, err := s.commit(ctx, registerID)
	if err != nil {
		s.idempotency.Release(ctx, idempotencyKey)
		return nil, err
	}

	s.idempotency.Complete(ctx, idempotencyKey, payloadHash, sale)
	return sale, nil
}

func (s *CheckoutService) commit(ctx context.Context, registerID string) (*domain.Sale, error) {
	var sale *domain.Sale

	err := s.registers.WithCart(registerID, func(cart *domain.Cart) error {
		if cart.IsEmpty() {
			return serviceerrors.NewEmptyCartError()
		}
		lines := cart.Lines()

		// Validating: stock may have moved since the items were added,
		// so every line is re-read before anything is written.
		for _, line := range lines {
			product, err := s.ledger.GetBySKU(ctx, line.SKU)
			if err != nil {
				return err
			}
			if product.Stock < line.Quantity {
				return serviceerrors.NewStockInsufficientError(line.SKU, product.Stock)
			}
		}

		// Applying: every decrement plus the sale append commit or roll
		// back together.
		sale = domain.NewSale(s.now(), lines)
		event := domain.NewSaleCompletedEvent(sale)
		err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
			for _, line := range lines {
				if err := s.ledger.DeductStock(txCtx, line.SKU, line.Quantity); err != nil {
					return err
				}
			}
			return s.sales.Append(txCtx, sale, event)
		})
		if err != nil {
			logger.Error(ctx, "checkout: commit transaction failed", err, map[string]any{
				"register_id":    registerID,
				"transaction_id": sale.TransactionID,
			})
			return err
		}

		// Recorded: the cart is cleared exactly once, inside the session
		// lock, so no add can land between the append and the clear.
		cart.Clear()
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "Sale recorded", map[string]any{
		"register_id":    registerID,
		"transaction_id": sale.TransactionID,
		"total":          int64(sale.Total),
		"lines":          len(sale.Lines),
	})

	for _, line := range sale.Lines {
		s.products.InvalidateCache(ctx, line.SKU)
	}

	s.receipts.Emit(ctx, sale)
	s.reportLowStock(ctx, sale)

	return sale, nil
}

func (s *CheckoutService) reportLowStock(ctx context.Context, sale *domain.Sale) {
	for _, line := range sale.Lines {
		product, err := s.ledger.GetBySKU(ctx, line.SKU)
		if err != nil {
			logger.Error(ctx, "checkout: low-stock read failed", err, map[string]any{"sku": line.SKU})
			continue
		}
		if product.Stock > s.lowStockThreshold {
			continue
		}

		event := domain.NewStockLowEvent(product, s.lowStockThreshold, s.now())
		if err := s.broker.Publish(ctx, event); err != nil {
			logger.Error(ctx, "checkout: low-stock publish failed", err, map[string]any{"sku": line.SKU})
			continue
		}
		logger.Warn(ctx, "Product stock low", map[string]any{
			"sku":   product.SKU,
			"stock": product.Stock,
		})
	}
}
