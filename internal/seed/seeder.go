package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Lixing-Zhang/ecommerce-backend/internal/models"
)

// catalog is the part of the product service the seeder needs
type catalog interface {
	CountProducts(ctx context.Context) (int64, error)
	CreateProduct(ctx context.Context, req models.ProductRequest) (*models.ProductSummary, error)
}

// Seeder fills an empty catalog from seed sources
type Seeder struct {
	loader  *Loader
	catalog catalog
	log     *slog.Logger
}

func NewSeeder(loader *Loader, catalog catalog, log *slog.Logger) *Seeder {
	return &Seeder{loader: loader, catalog: catalog, log: log}
}

// Run imports every product from sources unless the catalog already has
// products. It returns the number of products created.
func (s *Seeder) Run(ctx context.Context, sources []string) (int, error) {
	existing, err := s.catalog.CountProducts(ctx)
	if err != nil {
		return 0, err
	}
	if existing > 0 {
		s.log.Info("catalog already populated, skipping seed", "products", existing)
		return 0, nil
	}

	products, err := s.loader.Load(ctx, sources)
	if err != nil {
		return 0, err
	}

	for i, p := range products {
		if _, err := s.catalog.CreateProduct(ctx, p); err != nil {
			return i, fmt.Errorf("seed product %d: %w", i+1, err)
		}
	}

	s.log.Info("catalog seeded", "sources", len(sources), "products", len(products))
	return len(products), nil
}
