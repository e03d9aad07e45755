package service

import (
	"context"

	"github.com/tokogrand/pos-register/internal/core/domain"
	"github.com/tokogrand/pos-register/internal/core/logger"
	"github.com/tokogrand/pos-register/internal/core/port"
	"github.com/tokogrand/pos-register/internal/core/receipt"
)

// ReceiptService drives both renderings of a committed sale: the binary
// stream to the print spooler when one is present, and the plain-text
// file that is written unconditionally as the durability backstop.
type ReceiptService struct {
	printer port.PrinterPort
	store   port.ReceiptStorePort
	sales   port.SalePort
	shop    receipt.Shop
}

func NewReceiptService(printer port.PrinterPort, store port.ReceiptStorePort, sales port.SalePort, shop receipt.Shop) *ReceiptService {
	return &ReceiptService{printer: printer, store: store, sales: sales, shop: shop}
}

// Emit renders and dispatches the receipt for a freshly committed sale.
// Print and file failures are logged, never propagated: the sale record
// already exists and the commit outcome must not depend on output devices.
func (s *ReceiptService) Emit(ctx context.Context, sale *domain.Sale) {
	s.print(ctx, sale)

	path, err := s.store.Save(ctx, sale.TransactionID, receipt.RenderText(sale, s.shop))
	if err != nil {
		logger.Error(ctx, "receipt: file save failed", err, map[string]any{
			"transaction_id": sale.TransactionID,
		})
		return
	}
	logger.Info(ctx, "Receipt saved", map[string]any{
		"transaction_id": sale.TransactionID,
		"path":           path,
	})
}

// Reprint re-renders a persisted sale. Rendering is stateless, so any
// appended sale row can reproduce its receipt for audit.
func (s *ReceiptService) Reprint(ctx context.Context, transactionID string) (string, error) {
	sale, err := s.sales.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return "", err
	}

	s.print(ctx, sale)
	return s.store.Save(ctx, sale.TransactionID, receipt.RenderText(sale, s.shop))
}

func (s *ReceiptService) print(ctx context.Context, sale *domain.Sale) {
	if !s.printer.Available() {
		logger.Debug(ctx, "receipt: printer unavailable, file fallback only", map[string]any{
			"transaction_id": sale.TransactionID,
		})
		return
	}

	raw := receipt.RenderESCPOS(sale, s.shop)
	if err := s.printer.Print(ctx, "Sales Receipt "+sale.TransactionID, raw); err != nil {
		logger.Error(ctx, "receipt: device print failed, file fallback only", err, map[string]any{
			"transaction_id": sale.TransactionID,
		})
	}
}
