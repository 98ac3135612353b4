package repository

import (
	"context"
	"errors"

	"github.com/Lixing-Zhang/ecommerce-backend/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Create(ctx context.Context, product models.Product) (string, error)
	Count(ctx context.Context, filter models.ProductFilter) (int64, error)
	// List returns ID, name and price of matching products ordered by ID.
	List(ctx context.Context, filter models.ProductFilter, limit, offset int) ([]models.Product, error)
	// GetByID returns ErrProductNotFound for unknown and malformed IDs alike.
	GetByID(ctx context.Context, id string) (*models.Product, error)
	// GetByIDs resolves the given IDs, keyed by the ID as passed in.
	// Unknown and malformed IDs are absent from the result.
	GetByIDs(ctx context.Context, ids []string) (map[string]models.Product, error)
}

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	Create(ctx context.Context, order models.Order) (string, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	// ListByUser returns the user's orders ordered by ID.
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.Order, error)
}
