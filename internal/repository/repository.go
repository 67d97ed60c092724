package repository

import (
	"context"

	"beautytime/internal/models"
)

// ProductRepository owns the products collection.
type ProductRepository interface {
	Insert(ctx context.Context, p *models.Product) (*models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Update(ctx context.Context, id string, req *models.UpdateProductRequest, imageURL string) (*models.Product, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter models.ProductFilter, page models.PageRequest) ([]models.Product, int64, error)
	Featured(ctx context.Context, limit int) ([]models.Product, error)
	CountAll(ctx context.Context) (int64, error)
	CountInStock(ctx context.Context) (int64, error)
	FindOutOfStock(ctx context.Context) ([]models.Product, error)
}

// OrderRepository owns the orders collection.
type OrderRepository interface {
	Insert(ctx context.Context, o *models.Order) (*models.Order, error)
	FindByID(ctx context.Context, id string) (*models.Order, error)
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error)
	List(ctx context.Context, filter models.OrderFilter, page models.PageRequest) ([]models.Order, int64, error)
	Recent(ctx context.Context, limit int) ([]models.Order, error)
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.OrderStatus) (int64, error)
	TotalRevenue(ctx context.Context) (float64, error)
	SalesByStatus(ctx context.Context) ([]models.StatusSales, error)
}

// AdminRepository owns the admins collection.
type AdminRepository interface {
	Insert(ctx context.Context, a *models.Admin) (*models.Admin, error)
	FindByID(ctx context.Context, id string) (*models.Admin, error)
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
	UpdateProfile(ctx context.Context, id string, req *models.UpdateProfileRequest) (*models.Admin, error)
	UpdateLastLogin(ctx context.Context, id string) error
}
