package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Lixing-Zhang/ecommerce-backend/internal/models"
	"github.com/Lixing-Zhang/ecommerce-backend/internal/repository"
)

func ptr[T any](v T) *T { return &v }

func productRequest(name string, price float64, sizes ...string) models.ProductRequest {
	req := models.ProductRequest{
		Name:  ptr(name),
		Price: ptr(price),
		Sizes: []models.ProductSizeRequest{},
	}
	for _, s := range sizes {
		req.Sizes = append(req.Sizes, models.ProductSizeRequest{Size: ptr(s), Quantity: ptr(1)})
	}
	return req
}

func orderRequest(userID string, items ...models.OrderItem) models.OrderRequest {
	req := models.OrderRequest{UserID: ptr(userID), Items: []models.OrderItemRequest{}}
	for _, it := range items {
		req.Items = append(req.Items, models.OrderItemRequest{ProductID: ptr(it.ProductID), Qty: it.Qty})
	}
	return req
}

func mustCreateProduct(t *testing.T, svc *ProductService, name string, price float64, sizes ...string) string {
	t.Helper()

	p, err := svc.CreateProduct(context.Background(), productRequest(name, price, sizes...))
	require.NoError(t, err)
	return p.ID
}

var errStoreDown = errors.New("store down")

// failingProductRepository fails every call, as a store would when unreachable
type failingProductRepository struct {
	repository.ProductRepository
}

func (failingProductRepository) Count(context.Context, models.ProductFilter) (int64, error) {
	return 0, errStoreDown
}

func (failingProductRepository) List(context.Context, models.ProductFilter, int, int) ([]models.Product, error) {
	return nil, errStoreDown
}

func (failingProductRepository) GetByID(context.Context, string) (*models.Product, error) {
	return nil, errStoreDown
}

func (failingProductRepository) GetByIDs(context.Context, []string) (map[string]models.Product, error) {
	return nil, errStoreDown
}
