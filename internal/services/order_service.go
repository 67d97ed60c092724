package services

import (
	"context"
	"fmt"
	"time"

	"beautytime/internal/common"
	"beautytime/internal/models"
	"beautytime/internal/repository"

	"github.com/rs/zerolog"
)

// statusTransitions is the explicit order state machine: cancellation is
// reachable from every non-terminal state, delivery only through shipping.
var statusTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderStatusPending:    {models.OrderStatusProcessing, models.OrderStatusCancelled},
	models.OrderStatusProcessing: {models.OrderStatusShipped, models.OrderStatusCancelled},
	models.OrderStatusShipped:    {models.OrderStatusDelivered, models.OrderStatusCancelled},
	models.OrderStatusDelivered:  {},
	models.OrderStatusCancelled:  {},
}

func ValidStatus(s string) bool {
	_, ok := statusTransitions[models.OrderStatus(s)]
	return ok
}

func TransitionAllowed(current, next models.OrderStatus) bool {
	for _, allowed := range statusTransitions[current] {
		if allowed == next {
			return true
		}
	}
	return false
}

type OrderService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	logger   zerolog.Logger
}

func NewOrderService(orders repository.OrderRepository, products repository.ProductRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{
		orders:   orders,
		products: products,
		logger:   logger,
	}
}

func (s *OrderService) Create(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	if req.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", common.ErrInvalidInput)
	}
	if req.CustomerName == "" || req.CustomerEmail == "" || req.ShippingAddress == "" {
		return nil, fmt.Errorf("%w: customer name, email, and shipping address are required", common.ErrInvalidInput)
	}

	product, err := s.products.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.InStock {
		return nil, fmt.Errorf("%w: product %s", common.ErrOutOfStock, product.Name)
	}

	// Name and price are copied so later product edits never touch the order.
	order, err := s.orders.Insert(ctx, &models.Order{
		ProductID:       product.ID,
		ProductName:     product.Name,
		ProductPrice:    product.Price,
		Quantity:        req.Quantity,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
		OrderDate:       time.Now(),
		Status:          string(models.OrderStatusPending),
		TotalAmount:     product.Price * float64(req.Quantity),
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("Error creating order")
		return nil, err
	}

	s.logger.Info().
		Str("order_id", order.ID.Hex()).
		Str("product_id", product.ID.Hex()).
		Float64("total", order.TotalAmount).
		Msg("Order created")
	return order, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, id string, status string) (*models.Order, error) {
	if !ValidStatus(status) {
		return nil, fmt.Errorf("%w: status must be one of: pending, processing, shipped, delivered, cancelled", common.ErrInvalidInput)
	}

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := models.OrderStatus(status)
	if !TransitionAllowed(models.OrderStatus(order.Status), next) {
		return nil, fmt.Errorf("%w: %s -> %s", common.ErrInvalidTransition, order.Status, status)
	}

	updated, err := s.orders.UpdateStatus(ctx, id, next)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("order_id", id).
		Str("from", order.Status).
		Str("to", status).
		Msg("Order status updated")
	return updated, nil
}

func (s *OrderService) List(ctx context.Context, filter models.OrderFilter, page models.PageRequest) ([]models.Order, int64, error) {
	return s.orders.List(ctx, filter, page)
}

func (s *OrderService) GetByID(ctx context.Context, id string) (*models.Order, error) {
	return s.orders.FindByID(ctx, id)
}

func (s *OrderService) Recent(ctx context.Context, limit int) ([]models.Order, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.orders.Recent(ctx, limit)
}
