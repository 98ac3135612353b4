package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Lixing-Zhang/ecommerce-backend/internal/models"
	"github.com/Lixing-Zhang/ecommerce-backend/internal/store"
)

// MongoOrderRepository implements OrderRepository on the orders collection
type MongoOrderRepository struct {
	store *store.Store
}

// NewMongoOrderRepository creates an order repository backed by MongoDB
func NewMongoOrderRepository(s *store.Store) *MongoOrderRepository {
	return &MongoOrderRepository{store: s}
}

func (r *MongoOrderRepository) collection() (*mongo.Collection, error) {
	return r.store.Collection(store.OrdersCollection)
}

func (r *MongoOrderRepository) Create(ctx context.Context, order models.Order) (string, error) {
	coll, err := r.collection()
	if err != nil {
		return "", err
	}

	doc := newOrderDocument(order)
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("insert order: %w", err)
	}
	return doc.ID.Hex(), nil
}

func (r *MongoOrderRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	coll, err := r.collection()
	if err != nil {
		return 0, err
	}

	n, err := coll.CountDocuments(ctx, bson.M{"userId": userID})
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

func (r *MongoOrderRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.Order, error) {
	coll, err := r.collection()
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}

	var docs []orderDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}

	orders := make([]models.Order, 0, len(docs))
	for _, d := range docs {
		orders = append(orders, d.toModel())
	}
	return orders, nil
}
