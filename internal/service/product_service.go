package service

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/Lixing-Zhang/ecommerce-backend/internal/models"
	"github.com/Lixing-Zhang/ecommerce-backend/internal/pagination"
	"github.com/Lixing-Zhang/ecommerce-backend/internal/repository"
)

// ProductService handles business logic for products
type ProductService struct {
	repo repository.ProductRepository
	log  *slog.Logger
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository, log *slog.Logger) *ProductService {
	return &ProductService{
		repo: repo,
		log:  log,
	}
}

// CreateProduct inserts a product and returns its summary
func (s *ProductService) CreateProduct(ctx context.Context, req models.ProductRequest) (*models.ProductSummary, error) {
	product := req.ToProduct()

	id, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	product.ID = id

	s.log.Debug("product created", "product_id", id, "name", product.Name)

	summary := product.Summary()
	return &summary, nil
}

// ListProducts returns one page of products matching the filter, ordered by ID
func (s *ProductService) ListProducts(ctx context.Context, filter models.ProductFilter, window pagination.Window) (*pagination.Result[models.ProductSummary], error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}

	var (
		total    int64
		products []models.Product
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.repo.Count(gctx, filter)
		if err != nil {
			return fmt.Errorf("count products: %w", err)
		}
		total = n
		return nil
	})
	g.Go(func() error {
		list, err := s.repo.List(gctx, filter, window.Limit, window.Offset)
		if err != nil {
			return fmt.Errorf("list products: %w", err)
		}
		products = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summaries := make([]models.ProductSummary, 0, len(products))
	for _, p := range products {
		summaries = append(summaries, p.Summary())
	}

	return pagination.NewResult(summaries, total, window), nil
}

// CountProducts returns the size of the whole catalog
func (s *ProductService) CountProducts(ctx context.Context) (int64, error) {
	n, err := s.repo.Count(ctx, models.ProductFilter{})
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}
