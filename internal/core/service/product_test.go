package service

import (
	"context"
	"errors"
	"testing"

	"github.com/tokogrand/pos-register/internal/core/domain"
	"github.com/tokogrand/pos-register/internal/core/dto"
	"github.com/tokogrand/pos-register/internal/core/port/mock"
	"github.com/tokogrand/pos-register/internal/core/serviceerrors"
	"go.uber.org/mock/gomock"
)

func setupProductService(t *testing.T) (*ProductService, *mock.MockLedgerPort, *mock.MockCachePort[domain.Product]) {
	ctrl := gomock.NewController(t)
	ledger := mock.NewMockLedgerPort(ctrl)
	cache := mock.NewMockCachePort[domain.Product](ctrl)
	return NewProductService(ledger, cache), ledger, cache
}

func TestProductService_Create(t *testing.T) {
	t.Run("valid product inserted", func(t *testing.T) {
		svc, ledger, _ := setupProductService(t)

		ledger.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *domain.Product) error {
				if p.SKU != "P1" || p.Name != "Apple" || p.Price != 1000000 || p.Stock != 5 {
					t.Fatalf("unexpected product %+v", p)
				}
				return nil
			})

		product, err := svc.Create(context.Background(), &dto.CreateProductRequest{
			SKU: "P1", Name: "Apple", Price: 1000000, Stock: 5,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if product.SKU != "P1" {
			t.Fatalf("expected sku P1, got %q", product.SKU)
		}
	})

	t.Run("non-positive price rejected", func(t *testing.T) {
		svc, _, _ := setupProductService(t)

		_, err := svc.Create(context.Background(), &dto.CreateProductRequest{SKU: "P1", Name: "Apple", Price: 0, Stock: 5})
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})

	t.Run("negative stock rejected", func(t *testing.T) {
		svc, _, _ := setupProductService(t)

		_, err := svc.Create(context.Background(), &dto.CreateProductRequest{SKU: "P1", Name: "Apple", Price: 100, Stock: -1})
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})

	t.Run("blank sku rejected", func(t *testing.T) {
		svc, _, _ := setupProductService(t)

		_, err := svc.Create(context.Background(), &dto.CreateProductRequest{SKU: "  ", Name: "Apple", Price: 100, Stock: 1})
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})

	t.Run("duplicate surfaces conflict", func(t *testing.T) {
		svc, ledger, _ := setupProductService(t)

		ledger.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(serviceerrors.NewConflictError("product sku already exists"))

		_, err := svc.Create(context.Background(), &dto.CreateProductRequest{SKU: "P1", Name: "Apple", Price: 100, Stock: 1})
		if !serviceerrors.IsOfKind(err, serviceerrors.KindConflict) {
			t.Fatalf("expected KindConflict, got %v", err)
		}
	})
}

func TestProductService_GetBySKU(t *testing.T) {
	t.Run("cache hit skips the ledger", func(t *testing.T) {
		svc, _, cache := setupProductService(t)
		cached := &domain.Product{SKU: "P1", Name: "Apple", Stock: 5}

		cache.EXPECT().Get(gomock.Any(), "product:P1").Return(cached, nil)

		product, err := svc.GetBySKU(context.Background(), "P1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if product != cached {
			t.Fatal("expected cached product")
		}
	})

	t.Run("cache miss reads the ledger and fills the cache", func(t *testing.T) {
		svc, ledger, cache := setupProductService(t)
		fromLedger := &domain.Product{SKU: "P1", Name: "Apple", Stock: 5}

		cache.EXPECT().Get(gomock.Any(), "product:P1").Return(nil, nil)
		ledger.EXPECT().GetBySKU(gomock.Any(), "P1").Return(fromLedger, nil)
		cache.EXPECT().Set(gomock.Any(), "product:P1", fromLedger, productCacheTTL).Return(nil)

		product, err := svc.GetBySKU(context.Background(), "P1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if product.SKU != "P1" {
			t.Fatalf("expected P1, got %q", product.SKU)
		}
	})

	t.Run("cache error still reads the ledger", func(t *testing.T) {
		svc, ledger, cache := setupProductService(t)

		cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))
		ledger.EXPECT().GetBySKU(gomock.Any(), "P1").Return(&domain.Product{SKU: "P1"}, nil)
		cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		if _, err := svc.GetBySKU(context.Background(), "P1"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("not found propagates", func(t *testing.T) {
		svc, ledger, cache := setupProductService(t)

		cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
		ledger.EXPECT().GetBySKU(gomock.Any(), "NOPE").Return(nil, serviceerrors.NewProductNotFoundError("NOPE"))

		_, err := svc.GetBySKU(context.Background(), "NOPE")
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})
}

func TestProductService_SetStock(t *testing.T) {
	t.Run("updates and invalidates cache", func(t *testing.T) {
		svc, ledger, cache := setupProductService(t)

		ledger.EXPECT().UpdateStock(gomock.Any(), "P1", 12).Return(nil)
		cache.EXPECT().Del(gomock.Any(), "product:P1").Return(nil)

		if err := svc.SetStock(context.Background(), "P1", 12); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("negative stock rejected before any write", func(t *testing.T) {
		svc, _, _ := setupProductService(t)

		err := svc.SetStock(context.Background(), "P1", -1)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})
}

func TestProductService_LowStock(t *testing.T) {
	t.Run("defaults the threshold", func(t *testing.T) {
		svc, ledger, _ := setupProductService(t)

		ledger.EXPECT().ListLowStock(gomock.Any(), DefaultLowStockThreshold).Return(nil, nil)

		if _, err := svc.LowStock(context.Background(), 0); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("passes an explicit threshold through", func(t *testing.T) {
		svc, ledger, _ := setupProductService(t)

		ledger.EXPECT().ListLowStock(gomock.Any(), 3).Return([]*domain.Product{{SKU: "P1", Stock: 1}}, nil)

		products, err := svc.LowStock(context.Background(), 3)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(products) != 1 {
			t.Fatalf("expected 1 product, got %d", len(products))
		}
	})
}

func TestProductService_Search(t *testing.T) {
	t.Run("blank term lists everything", func(t *testing.T) {
		svc, ledger, _ := setupProductService(t)

		ledger.EXPECT().List(gomock.Any()).Return(nil, nil)

		if _, err := svc.Search(context.Background(), "   "); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("term is forwarded", func(t *testing.T) {
		svc, ledger, _ := setupProductService(t)

		ledger.EXPECT().Search(gomock.Any(), "app").Return([]*domain.Product{{SKU: "P1"}}, nil)

		products, err := svc.Search(context.Background(), "app")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(products) != 1 {
			t.Fatalf("expected 1 product, got %d", len(products))
		}
	})
}
