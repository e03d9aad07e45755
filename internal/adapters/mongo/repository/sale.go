package repository

import (
	"context"
	"encoding/json"

	"github.com/tokogrand/pos-register/internal/adapters/mongo/document"
	"github.com/tokogrand/pos-register/internal/adapters/outbox"
	"github.com/tokogrand/pos-register/internal/core/domain"
	"github.com/tokogrand/pos-register/internal/core/logger"
	"github.com/tokogrand/pos-register/internal/core/port"
	"github.com/tokogrand/pos-register/internal/core/serviceerrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SaleRepository is the append-only sales record. Append expects to run
// inside the commit transaction, so the sale row and its outbox entry
// land atomically with the stock decrements.
type SaleRepository struct {
	*BaseRepository[document.SaleDocument]
	collection *mongo.Collection
	outbox     outbox.Repository
}

func NewSaleRepository(db *mongo.Database, outbox outbox.Repository) port.SalePort {
	repo := &SaleRepository{
		BaseRepository: NewBaseRepository[document.SaleDocument](db, "sales"),
		collection:     db.Collection("sales"),
		outbox:         outbox,
	}

	if err := repo.createIndexes(context.Background()); err != nil {
		logger.Error(context.Background(), "failed to create indexes", err, map[string]any{
			"collection": "sales",
		})
	}

	return repo
}

func (r *SaleRepository) createIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "transaction_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "timestamp", Value: -1}},
			Options: options.Index().SetUnique(false),
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *SaleRepository) Append(ctx context.Context, sale *domain.Sale, event domain.Event) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return err
	}

	doc := document.ToSaleDocument(sale)
	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return serviceerrors.NewConflictError("transaction " + sale.TransactionID + " already recorded")
		}
		return parseError(err)
	}
	sale.ID = domain.ID(result.InsertedID.(primitive.ObjectID).Hex())

	return r.outbox.Insert(ctx, outbox.Entry{
		EventName:  event.GetName(),
		EntityName: event.GetEntityName(),
		EventData:  eventData,
	})
}

func (r *SaleRepository) GetByTransactionID(ctx context.Context, transactionID string) (*domain.Sale, error) {
	doc, err := r.FindOne(ctx, bson.M{"transaction_id": transactionID})
	if err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			return nil, serviceerrors.NewNotFoundError("sale " + transactionID + " not found")
		}
		return nil, err
	}

	return doc.ToDomain(), nil
}

func (r *SaleRepository) List(ctx context.Context, limit, offset int64) ([]*domain.Sale, error) {
	opts := options.Find().
		SetLimit(limit).
		SetSkip(offset).
		SetSort(bson.D{{Key: "timestamp", Value: -1}})

	docs, err := r.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	sales := make([]*domain.Sale, len(docs))
	for i, doc := range docs {
		sales[i] = doc.ToDomain()
	}

	return sales, nil
}
