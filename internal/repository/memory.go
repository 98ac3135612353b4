package repository

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Lixing-Zhang/ecommerce-backend/internal/models"
)

// InMemoryProductRepository implements ProductRepository with in-memory storage.
// Products are kept in insertion order, which is also ID order.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
}

// NewInMemoryProductRepository creates an empty in-memory product repository
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{}
}

func (r *InMemoryProductRepository) Create(ctx context.Context, product models.Product) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = primitive.NewObjectID().Hex()
	product.Sizes = append([]models.ProductSize(nil), product.Sizes...)
	r.products = append(r.products, product)

	return product.ID, nil
}

func (r *InMemoryProductRepository) Count(ctx context.Context, filter models.ProductFilter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, p := range r.products {
		if matches(p, filter) {
			n++
		}
	}
	return n, nil
}

func (r *InMemoryProductRepository) List(ctx context.Context, filter models.ProductFilter, limit, offset int) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		products []models.Product
		skipped  int
	)
	for _, p := range r.products {
		if len(products) == limit {
			break
		}
		if !matches(p, filter) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		products = append(products, models.Product{ID: p.ID, Name: p.Name, Price: p.Price})
	}
	return products, nil
}

// GetByID returns a product by its ID
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	key, ok := canonicalID(id)
	if !ok {
		return nil, ErrProductNotFound
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == key {
			product := p
			return &product, nil
		}
	}
	return nil, ErrProductNotFound
}

func (r *InMemoryProductRepository) GetByIDs(ctx context.Context, ids []string) (map[string]models.Product, error) {
	found := make(map[string]models.Product, len(ids))
	for _, id := range ids {
		p, err := r.GetByID(ctx, id)
		if err != nil {
			continue
		}
		found[id] = *p
	}
	return found, nil
}

// Delete removes a product, standing in for administrative removal.
func (r *InMemoryProductRepository) Delete(ctx context.Context, id string) error {
	key, ok := canonicalID(id)
	if !ok {
		return ErrProductNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == key {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

func matches(p models.Product, filter models.ProductFilter) bool {
	if filter.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Name)) {
		return false
	}
	if filter.Size != "" {
		for _, s := range p.Sizes {
			if s.Size == filter.Size {
				return true
			}
		}
		return false
	}
	return true
}

// canonicalID normalizes a hex ObjectID the way the MongoDB repositories parse it.
func canonicalID(id string) (string, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", false
	}
	return oid.Hex(), true
}

// InMemoryOrderRepository implements OrderRepository with in-memory storage
type InMemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []models.Order
}

// NewInMemoryOrderRepository creates an empty in-memory order repository
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{}
}

func (r *InMemoryOrderRepository) Create(ctx context.Context, order models.Order) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = primitive.NewObjectID().Hex()
	order.Items = append([]models.OrderItem(nil), order.Items...)
	r.orders = append(r.orders, order)

	return order.ID, nil
}

func (r *InMemoryOrderRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, o := range r.orders {
		if o.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *InMemoryOrderRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		orders  []models.Order
		skipped int
	)
	for _, o := range r.orders {
		if len(orders) == limit {
			break
		}
		if o.UserID != userID {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		o.Items = append([]models.OrderItem(nil), o.Items...)
		orders = append(orders, o)
	}
	return orders, nil
}
