package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Lixing-Zhang/ecommerce-backend/internal/models"
	"github.com/Lixing-Zhang/ecommerce-backend/internal/store"
)

// MongoProductRepository implements ProductRepository on the products collection
type MongoProductRepository struct {
	store *store.Store
}

// NewMongoProductRepository creates a product repository backed by MongoDB
func NewMongoProductRepository(s *store.Store) *MongoProductRepository {
	return &MongoProductRepository{store: s}
}

func (r *MongoProductRepository) collection() (*mongo.Collection, error) {
	return r.store.Collection(store.ProductsCollection)
}

func (r *MongoProductRepository) Create(ctx context.Context, product models.Product) (string, error) {
	coll, err := r.collection()
	if err != nil {
		return "", err
	}

	doc := newProductDocument(product)
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("insert product: %w", err)
	}
	return doc.ID.Hex(), nil
}

func (r *MongoProductRepository) Count(ctx context.Context, filter models.ProductFilter) (int64, error) {
	coll, err := r.collection()
	if err != nil {
		return 0, err
	}

	n, err := coll.CountDocuments(ctx, productQuery(filter))
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

func (r *MongoProductRepository) List(ctx context.Context, filter models.ProductFilter, limit, offset int) ([]models.Product, error) {
	coll, err := r.collection()
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetProjection(bson.M{"name": 1, "price": 1}).
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := coll.Find(ctx, productQuery(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}

	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	products := make([]models.Product, 0, len(docs))
	for _, d := range docs {
		products = append(products, d.toModel())
	}
	return products, nil
}

func (r *MongoProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	coll, err := r.collection()
	if err != nil {
		return nil, err
	}

	var doc productDocument
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("find product %s: %w", id, err)
	}

	product := doc.toModel()
	return &product, nil
}

func (r *MongoProductRepository) GetByIDs(ctx context.Context, ids []string) (map[string]models.Product, error) {
	found := make(map[string]models.Product, len(ids))

	oids := make([]primitive.ObjectID, 0, len(ids))
	requested := make(map[primitive.ObjectID][]string, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		if _, seen := requested[oid]; !seen {
			oids = append(oids, oid)
		}
		requested[oid] = append(requested[oid], id)
	}
	if len(oids) == 0 {
		return found, nil
	}

	coll, err := r.collection()
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("find products by id: %w", err)
	}

	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	for _, d := range docs {
		for _, id := range requested[d.ID] {
			found[id] = d.toModel()
		}
	}
	return found, nil
}

// productQuery matches the name literally anywhere, ignoring case, and the
// size exactly against any sizes entry.
func productQuery(filter models.ProductFilter) bson.M {
	query := bson.M{}
	if filter.Name != "" {
		query["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Name), Options: "i"}
	}
	if filter.Size != "" {
		query["sizes.size"] = filter.Size
	}
	return query
}
