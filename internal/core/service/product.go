package service

import (
	"context"
	"strings"
	"time"

	"github.com/tokogrand/pos-register/internal/core/domain"
	"github.com/tokogrand/pos-register/internal/core/dto"
	"github.com/tokogrand/pos-register/internal/core/logger"
	"github.com/tokogrand/pos-register/internal/core/port"
	"github.com/tokogrand/pos-register/internal/core/serviceerrors"
)

const (
	productCacheTTL = 15 * time.Minute

	// DefaultLowStockThreshold is the restock report cutoff used when the
	// caller does not name one.
	DefaultLowStockThreshold = 10
)

// ProductService owns the management side of the ledger: inserting rows,
// listing and searching, stock edits, deletions and the low-stock report.
type ProductService struct {
	ledger port.LedgerPort
	cache  port.CachePort[domain.Product]
}

func NewProductService(ledger port.LedgerPort, cache port.CachePort[domain.Product]) *ProductService {
	return &ProductService{ledger: ledger, cache: cache}
}

func (s *ProductService) cacheKey(sku string) string {
	return "product:" + sku
}

func (s *ProductService) Create(ctx context.Context, request *dto.CreateProductRequest) (*domain.Product, error) {
	sku := strings.TrimSpace(request.SKU)
	name := strings.TrimSpace(request.Name)
	if sku == "" {
		return nil, serviceerrors.NewInvalidRequestError("product sku must not be empty")
	}
	if name == "" {
		return nil, serviceerrors.NewInvalidRequestError("product name must not be empty")
	}
	if request.Price <= 0 {
		return nil, serviceerrors.NewInvalidRequestError("product price must be greater than zero")
	}
	if request.Stock < 0 {
		return nil, serviceerrors.NewInvalidRequestError("product stock must not be negative")
	}

	product := domain.NewProduct(sku, name, domain.NewAmountFromCents(request.Price), request.Stock)
	if err := s.ledger.Insert(ctx, product); err != nil {
		logger.Error(ctx, "product: insert failed", err, map[string]any{
			"sku":  sku,
			"name": name,
		})
		return nil, err
	}

	logger.Info(ctx, "Product created", map[string]any{"sku": product.SKU})
	return product, nil
}

func (s *ProductService) GetBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	cached, err := s.cache.Get(ctx, s.cacheKey(sku))
	if err != nil {
		logger.Error(ctx, "cache: get product failed", err, map[string]any{"sku": sku})
	}
	if cached != nil {
		return cached, nil
	}

	product, err := s.ledger.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, s.cacheKey(sku), product, productCacheTTL); err != nil {
		logger.Error(ctx, "cache: set product failed", err, map[string]any{"sku": sku})
	}

	return product, nil
}

func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.ledger.List(ctx)
}

func (s *ProductService) Search(ctx context.Context, term string) ([]*domain.Product, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.ledger.List(ctx)
	}
	return s.ledger.Search(ctx, term)
}

// SetStock overwrites the ledger stock for a product, the path used by
// the stock-editing screen rather than the register.
func (s *ProductService) SetStock(ctx context.Context, sku string, stock int) error {
	if stock < 0 {
		return serviceerrors.NewInvalidRequestError("stock must not be negative")
	}

	if err := s.ledger.UpdateStock(ctx, sku, stock); err != nil {
		return err
	}
	s.InvalidateCache(ctx, sku)

	logger.Info(ctx, "Product stock updated", map[string]any{"sku": sku, "stock": stock})
	return nil
}

func (s *ProductService) Delete(ctx context.Context, sku string) error {
	if err := s.ledger.Delete(ctx, sku); err != nil {
		return err
	}
	s.InvalidateCache(ctx, sku)

	logger.Info(ctx, "Product deleted", map[string]any{"sku": sku})
	return nil
}

func (s *ProductService) LowStock(ctx context.Context, threshold int) ([]*domain.Product, error) {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	return s.ledger.ListLowStock(ctx, threshold)
}

// InvalidateCache drops the cached copy after any stock write so the next
// availability read observes the ledger.
func (s *ProductService) InvalidateCache(ctx context.Context, sku string) {
	if err := s.cache.Del(ctx, s.cacheKey(sku)); err != nil {
		logger.Error(ctx, "cache: invalidate product failed", err, map[string]any{"sku": sku})
	}
}
