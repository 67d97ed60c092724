package services

import (
	"context"

	"beautytime/internal/models"
	"beautytime/internal/repository"

	"github.com/rs/zerolog"
)

type DashboardService struct {
	products repository.ProductRepository
	orders   repository.OrderRepository
	logger   zerolog.Logger
}

func NewDashboardService(products repository.ProductRepository, orders repository.OrderRepository, logger zerolog.Logger) *DashboardService {
	return &DashboardService{
		products: products,
		orders:   orders,
		logger:   logger,
	}
}

func (s *DashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	totalProducts, err := s.products.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	inStock, err := s.products.CountInStock(ctx)
	if err != nil {
		return nil, err
	}

	totalOrders, err := s.orders.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.orders.CountByStatus(ctx, models.OrderStatusPending)
	if err != nil {
		return nil, err
	}
	processing, err := s.orders.CountByStatus(ctx, models.OrderStatusProcessing)
	if err != nil {
		return nil, err
	}

	revenue, err := s.orders.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	return &models.DashboardStats{
		Products: models.ProductStats{Total: totalProducts, InStock: inStock},
		Orders:   models.OrderStats{Total: totalOrders, Pending: pending, Processing: processing},
		Revenue:  models.RevenueStats{Total: revenue},
	}, nil
}

func (s *DashboardService) RecentOrders(ctx context.Context, limit int) ([]models.Order, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.orders.Recent(ctx, limit)
}

func (s *DashboardService) SalesByStatus(ctx context.Context) ([]models.StatusSales, error) {
	return s.orders.SalesByStatus(ctx)
}

// LowStock reports out-of-stock products. Stock is a boolean flag, so "low"
// means "none".
func (s *DashboardService) LowStock(ctx context.Context) ([]models.Product, error) {
	return s.products.FindOutOfStock(ctx)
}
