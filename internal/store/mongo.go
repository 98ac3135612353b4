package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Lixing-Zhang/ecommerce-backend/internal/config"
)

// Collection names
const (
	ProductsCollection = "products"
	OrdersCollection   = "orders"
)

// ErrNotConnected is returned by every collection access once connecting failed.
var ErrNotConnected = errors.New("store is not connected")

// Store owns the MongoDB client and hands out named collections.
type Store struct {
	mu     sync.RWMutex
	client *mongo.Client
	db     *mongo.Database
	log    *slog.Logger
}

// Connect dials MongoDB and verifies the connection with a ping.
// A failure is logged and leaves the store without a handle; it is not retried.
func Connect(ctx context.Context, cfg config.MongoConfig, log *slog.Logger) *Store {
	s := &Store{log: log}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(cfg.ConnectTimeout)*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		log.Error("could not connect to mongodb", "error", err)
		return s
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Error("could not connect to mongodb", "error", err)
		_ = client.Disconnect(context.Background())
		return s
	}

	s.client = client
	s.db = client.Database(cfg.Database)
	log.Info("mongodb connected", "database", cfg.Database)

	return s
}

// Connected reports whether the store holds a usable handle.
func (s *Store) Connected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.db != nil
}

// Collection returns the named collection or ErrNotConnected.
func (s *Store) Collection(name string) (*mongo.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, ErrNotConnected
	}
	return s.db.Collection(name), nil
}

// Ping checks that the server is still reachable.
func (s *Store) Ping(ctx context.Context) error {
	s.mu.RLock()
	client := s.client
	s.mu.RUnlock()

	if client == nil {
		return ErrNotConnected
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping mongodb: %w", err)
	}
	return nil
}

// Close disconnects the client. Closing an unconnected store is a no-op.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return nil
	}

	err := s.client.Disconnect(ctx)
	s.client = nil
	s.db = nil
	if err != nil {
		return fmt.Errorf("disconnect mongodb: %w", err)
	}

	s.log.Info("mongodb connection closed")
	return nil
}
