package domain

import "time"

// SaleLine is the permanent snapshot of one committed cart line. Later
// ledger edits never reach back into it.
type SaleLine struct {
	SKU       string `json:"sku" bson:"sku"`
	Name      string `json:"name" bson:"name"`
	UnitPrice Amount `json:"unit_price" bson:"unit_price"`
	Quantity  int    `json:"quantity" bson:"quantity"`
}

func (l SaleLine) Subtotal() Amount {
	return l.UnitPrice.Multiply(l.Quantity)
}

// Sale is one committed, append-only transaction. Payment always equals
// the total and change is always zero; both are recorded literally so the
// row stands on its own.
type Sale struct {
	ID            ID
	TransactionID string
	Timestamp     time.Time
	Total         Amount
	Payment       Amount
	Change        Amount
	Lines         []SaleLine
}

// TransactionIDFormat derives the receipt-facing transaction id from the
// commit timestamp.
const TransactionIDFormat = "20060102150405"

func NewSale(at time.Time, lines []CartLine) *Sale {
	saleLines := make([]SaleLine, len(lines))
	total := Amount(0)
	for i, line := range lines {
		saleLines[i] = SaleLine{
			SKU:       line.SKU,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		}
		total = total.Add(line.Subtotal())
	}

	return &Sale{
		TransactionID: at.Format(TransactionIDFormat),
		Timestamp:     at,
		Total:         total,
		Payment:       total,
		Change:        0,
		Lines:         saleLines,
	}
}

// RecomputeTotal sums the line snapshots independently of the stored
// total, for audit checks against the running total shown before commit.
func (s *Sale) RecomputeTotal() Amount {
	total := Amount(0)
	for _, line := range s.Lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

type SaleCompletedEvent struct {
	TransactionID string     `json:"transaction_id"`
	Total         Amount     `json:"total"`
	Lines         []SaleLine `json:"lines"`
	Timestamp     time.Time  `json:"timestamp"`
}

func (e *SaleCompletedEvent) GetName() string {
	return "sale.completed"
}

func (e *SaleCompletedEvent) GetEntityName() string {
	return "sale"
}

func NewSaleCompletedEvent(sale *Sale) *SaleCompletedEvent {
	return &SaleCompletedEvent{
		TransactionID: sale.TransactionID,
		Total:         sale.Total,
		Lines:         sale.Lines,
		Timestamp:     sale.Timestamp,
	}
}
