package document

import (
	"time"

	"github.com/tokogrand/pos-register/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SaleLineDocument struct {
	SKU       string `bson:"sku"`
	Name      string `bson:"name"`
	UnitPrice int64  `bson:"unit_price"`
	Quantity  int    `bson:"quantity"`
}

type SaleDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	TransactionID string             `bson:"transaction_id"`
	Timestamp     time.Time          `bson:"timestamp"`
	Total         int64              `bson:"total"`
	Payment       int64              `bson:"payment"`
	Change        int64              `bson:"change"`
	Lines         []SaleLineDocument `bson:"lines"`
}

func (doc SaleDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *SaleDocument) ToDomain() *domain.Sale {
	lines := make([]domain.SaleLine, len(doc.Lines))
	for i, lineDoc := range doc.Lines {
		lines[i] = domain.SaleLine{
			SKU:       lineDoc.SKU,
			Name:      lineDoc.Name,
			UnitPrice: domain.Amount(lineDoc.UnitPrice),
			Quantity:  lineDoc.Quantity,
		}
	}

	return &domain.Sale{
		ID:            domain.ID(doc.ID.Hex()),
		TransactionID: doc.TransactionID,
		Timestamp:     doc.Timestamp,
		Total:         domain.Amount(doc.Total),
		Payment:       domain.Amount(doc.Payment),
		Change:        domain.Amount(doc.Change),
		Lines:         lines,
	}
}

func ToSaleDocument(sale *domain.Sale) *SaleDocument {
	lines := make([]SaleLineDocument, len(sale.Lines))
	for i, line := range sale.Lines {
		lines[i] = SaleLineDocument{
			SKU:       line.SKU,
			Name:      line.Name,
			UnitPrice: int64(line.UnitPrice),
			Quantity:  line.Quantity,
		}
	}

	doc := &SaleDocument{
		TransactionID: sale.TransactionID,
		Timestamp:     sale.Timestamp,
		Total:         int64(sale.Total),
		Payment:       int64(sale.Payment),
		Change:        int64(sale.Change),
		Lines:         lines,
	}

	if sale.ID != "" {
		objectID, _ := primitive.ObjectIDFromHex(string(sale.ID))
		doc.ID = objectID
	}

	return doc
}
