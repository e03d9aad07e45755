package domain

import "time"

// Product is a row in the stock ledger. SKU is the identifier the barcode
// scanner submits; both SKU and Name are unique in the ledger.
type Product struct {
	ID        ID
	SKU       string
	Name      string
	Price     Amount
	Stock     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewProduct(sku, name string, price Amount, stock int) *Product {
	return &Product{
		SKU:       sku,
		Name:      name,
		Price:     price,
		Stock:     stock,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

type StockLowEvent struct {
	SKU       string    `json:"sku"`
	Name      string    `json:"name"`
	Stock     int       `json:"stock"`
	Threshold int       `json:"threshold"`
	At        time.Time `json:"at"`
}

func (e *StockLowEvent) GetName() string {
	return "product.stock_low"
}

func (e *StockLowEvent) GetEntityName() string {
	return "product"
}

func NewStockLowEvent(p *Product, threshold int, at time.Time) *StockLowEvent {
	return &StockLowEvent{
		SKU:       p.SKU,
		Name:      p.Name,
		Stock:     p.Stock,
		Threshold: threshold,
		At:        at,
	}
}
