package repository

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/tokogrand/pos-register/internal/adapters/mongo/document"
	"github.com/tokogrand/pos-register/internal/core/domain"
	"github.com/tokogrand/pos-register/internal/core/logger"
	"github.com/tokogrand/pos-register/internal/core/port"
	"github.com/tokogrand/pos-register/internal/core/serviceerrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductRepository backs the stock ledger with the products collection.
// SKU and name each carry a unique index; the duplicate-key detail in a
// conflict error names the offending field.
type ProductRepository struct {
	*BaseRepository[document.ProductDocument]
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) port.LedgerPort {
	repo := &ProductRepository{
		BaseRepository: NewBaseRepository[document.ProductDocument](db, "products"),
		collection:     db.Collection("products"),
	}

	if err := repo.createIndexes(context.Background()); err != nil {
		logger.Error(context.Background(), "failed to create indexes", err, map[string]any{
			"collection": "products",
		})
	}

	return repo
}

func (r *ProductRepository) createIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "sku", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "stock", Value: 1}},
			Options: options.Index().SetUnique(false),
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *ProductRepository) Insert(ctx context.Context, product *domain.Product) error {
	doc := document.ToProductDocument(product)

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return parseProductError(err)
	}

	product.ID = domain.ID(result.InsertedID.(primitive.ObjectID).Hex())
	return nil
}

func (r *ProductRepository) GetBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	doc, err := r.FindOne(ctx, bson.M{"sku": sku})
	if err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			return nil, serviceerrors.NewProductNotFoundError(sku)
		}
		return nil, err
	}

	return doc.ToDomain(), nil
}

func (r *ProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	docs, err := r.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	return toProducts(docs), nil
}

// Search matches the term case-insensitively against both sku and name,
// the way an operator types a fragment into the register's lookup box.
func (r *ProductRepository) Search(ctx context.Context, term string) ([]*domain.Product, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"sku": pattern},
		bson.M{"name": pattern},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	docs, err := r.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	return toProducts(docs), nil
}

func (r *ProductRepository) UpdateStock(ctx context.Context, sku string, stock int) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"sku": sku},
		bson.M{"$set": bson.M{
			"stock":      stock,
			"updated_at": time.Now(),
		}},
	)
	if err != nil {
		return parseProductError(err)
	}
	if result.MatchedCount == 0 {
		return serviceerrors.NewProductNotFoundError(sku)
	}

	return nil
}

// DeductStock decrements guarded by the current stock, so two concurrent
// commits cannot drive the ledger negative.
func (r *ProductRepository) DeductStock(ctx context.Context, sku string, quantity int) error {
	result := r.collection.FindOneAndUpdate(ctx,
		bson.M{"sku": sku, "stock": bson.M{"$gte": quantity}},
		bson.M{
			"$inc": bson.M{"stock": -quantity},
			"$set": bson.M{"updated_at": time.Now()},
		},
	)
	if result.Err() != nil {
		if result.Err() == mongo.ErrNoDocuments {
			return serviceerrors.NewUnprocessableEntityError("insufficient stock for product " + sku)
		}
		return result.Err()
	}

	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, sku string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"sku": sku})
	if err != nil {
		return parseProductError(err)
	}
	if result.DeletedCount == 0 {
		return serviceerrors.NewProductNotFoundError(sku)
	}

	return nil
}

// ListLowStock returns the restock report, lowest stock first.
func (r *ProductRepository) ListLowStock(ctx context.Context, threshold int) ([]*domain.Product, error) {
	filter := bson.M{"stock": bson.M{"$lte": threshold}}
	opts := options.Find().SetSort(bson.D{
		{Key: "stock", Value: 1},
		{Key: "name", Value: 1},
	})

	docs, err := r.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	return toProducts(docs), nil
}

func toProducts(docs []document.ProductDocument) []*domain.Product {
	products := make([]*domain.Product, len(docs))
	for i, doc := range docs {
		products[i] = doc.ToDomain()
	}
	return products
}

// parseProductError refines a duplicate-key error with the conflicting
// field, which mongo reports through the violated index name.
func parseProductError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		message := err.Error()
		switch {
		case strings.Contains(message, "sku_1"):
			return serviceerrors.NewConflictError("a product with this sku already exists")
		case strings.Contains(message, "name_1"):
			return serviceerrors.NewConflictError("a product with this name already exists")
		}
	}
	return parseError(err)
}
