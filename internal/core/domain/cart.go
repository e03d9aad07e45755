package domain

import (
	"errors"
	"sort"
)

var (
	ErrStockInsufficient = errors.New("stock insufficient")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrLineNotFound      = errors.New("cart line not found")
)

// CartLine holds one distinct product in the cart. UnitPrice is a snapshot
// taken when the line was created; a ledger price change mid-session does
// not reprice lines already in the cart.
type CartLine struct {
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	UnitPrice Amount `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

func (l CartLine) Subtotal() Amount {
	return l.UnitPrice.Multiply(l.Quantity)
}

// Cart is the volatile, per-register set of not-yet-committed purchase
// lines, keyed by SKU. Every mutation takes the current ledger stock for
// the product and fails without touching the cart when the resulting
// quantity would exceed it.
type Cart struct {
	lines map[string]*CartLine
}

func NewCart() *Cart {
	return &Cart{lines: make(map[string]*CartLine)}
}

// Add puts one unit of the product into the cart. A new line snapshots the
// product's current price; an existing line keeps its snapshot and only
// the quantity grows.
func (c *Cart) Add(p *Product) error {
	line, ok := c.lines[p.SKU]
	if !ok {
		if p.Stock < 1 {
			return ErrStockInsufficient
		}
		c.lines[p.SKU] = &CartLine{
			SKU:       p.SKU,
			Name:      p.Name,
			UnitPrice: p.Price,
			Quantity:  1,
		}
		return nil
	}

	if line.Quantity+1 > p.Stock {
		return ErrStockInsufficient
	}
	line.Quantity++
	return nil
}

// SetQuantity overwrites the line quantity. Zero removes the line.
func (c *Cart) SetQuantity(sku string, quantity, ledgerStock int) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	if quantity == 0 {
		c.Remove(sku)
		return nil
	}

	line, ok := c.lines[sku]
	if !ok {
		return ErrLineNotFound
	}
	if quantity > ledgerStock {
		return ErrStockInsufficient
	}
	line.Quantity = quantity
	return nil
}

// Remove deletes the line if present; removing an absent line is a no-op.
func (c *Cart) Remove(sku string) {
	delete(c.lines, sku)
}

// Quantity reports how many units of the product the cart holds, zero if
// the product is not in the cart.
func (c *Cart) Quantity(sku string) int {
	if line, ok := c.lines[sku]; ok {
		return line.Quantity
	}
	return 0
}

func (c *Cart) Total() Amount {
	total := Amount(0)
	for _, line := range c.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// Lines returns a copy of the cart lines sorted by product name. Callers
// may hold the slice across later mutations.
func (c *Cart) Lines() []CartLine {
	lines := make([]CartLine, 0, len(c.lines))
	for _, line := range c.lines {
		lines = append(lines, *line)
	}
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Name < lines[j].Name
	})
	return lines
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Clear() {
	c.lines = make(map[string]*CartLine)
}
