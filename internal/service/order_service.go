package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/Lixing-Zhang/ecommerce-backend/internal/models"
	"github.com/Lixing-Zhang/ecommerce-backend/internal/pagination"
	"github.com/Lixing-Zhang/ecommerce-backend/internal/repository"
)

// OrderService handles order business logic
type OrderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	log         *slog.Logger
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, log *slog.Logger) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		log:         log,
	}
}

// CreateOrder prices the items against the current catalog and stores the order.
// Items whose product cannot be found add nothing to the total; the order is
// created regardless.
func (s *OrderService) CreateOrder(ctx context.Context, req models.OrderRequest) (*models.OrderCreated, error) {
	order := req.ToOrder()

	total, err := s.priceItems(ctx, order.Items)
	if err != nil {
		return nil, err
	}
	order.Total = total.InexactFloat64()

	id, err := s.orderRepo.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.log.Info("order created", "order_id", id, "user_id", order.UserID, "items_count", len(order.Items), "total", order.Total)

	return &models.OrderCreated{ID: id}, nil
}

func (s *OrderService) priceItems(ctx context.Context, items []models.OrderItem) (decimal.Decimal, error) {
	total := decimal.Zero

	for _, item := range items {
		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if errors.Is(err, repository.ErrProductNotFound) {
			s.log.Info("product not found for order item", "product_id", item.ProductID)
			continue
		}
		if err != nil {
			return decimal.Zero, fmt.Errorf("price order item: %w", err)
		}

		line := decimal.NewFromFloat(product.Price).Mul(decimal.NewFromInt(int64(item.Qty)))
		total = total.Add(line)
	}

	return total, nil
}

// GetUserOrders returns one page of the user's orders with product details joined in.
//
// The window is applied to orders before any product is resolved, so an order
// stays on its page even when none of its products exist anymore; only its
// item list shrinks.
func (s *OrderService) GetUserOrders(ctx context.Context, userID string, window pagination.Window) (*pagination.Result[models.OrderView], error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}

	var (
		total  int64
		orders []models.Order
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.orderRepo.CountByUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("count orders: %w", err)
		}
		total = n
		return nil
	})
	g.Go(func() error {
		list, err := s.orderRepo.ListByUser(gctx, userID, window.Limit, window.Offset)
		if err != nil {
			return fmt.Errorf("list orders: %w", err)
		}
		orders = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	products, err := s.productRepo.GetByIDs(ctx, referencedProductIDs(orders))
	if err != nil {
		return nil, fmt.Errorf("resolve order products: %w", err)
	}

	views := make([]models.OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, joinOrder(o, products))
	}

	return pagination.NewResult(views, total, window), nil
}

// referencedProductIDs lists each distinct product ID once, in first-seen order.
func referencedProductIDs(orders []models.Order) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, o := range orders {
		for _, item := range o.Items {
			if _, ok := seen[item.ProductID]; ok {
				continue
			}
			seen[item.ProductID] = struct{}{}
			ids = append(ids, item.ProductID)
		}
	}
	return ids
}

// joinOrder attaches product details to each item, dropping items whose
// product is missing. The stored total is kept as is.
func joinOrder(order models.Order, products map[string]models.Product) models.OrderView {
	items := make([]models.OrderItemView, 0, len(order.Items))
	for _, item := range order.Items {
		product, ok := products[item.ProductID]
		if !ok {
			continue
		}
		items = append(items, models.OrderItemView{
			ProductID: item.ProductID,
			Qty:       item.Qty,
			ProductDetails: models.ProductDetails{
				ID:   product.ID,
				Name: product.Name,
			},
		})
	}

	return models.OrderView{
		ID:    order.ID,
		Items: items,
		Total: order.Total,
	}
}
