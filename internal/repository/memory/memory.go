// Package memory provides in-memory repository implementations used by
// tests in place of MongoDB.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"beautytime/internal/common"
	"beautytime/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductRepository struct {
	mu       sync.Mutex
	products []models.Product
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

func (r *ProductRepository) Insert(_ context.Context, p *models.Product) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	p.ID = primitive.NewObjectID()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.products = append(r.products, *p)
	return p, nil
}

func (r *ProductRepository) FindByID(_ context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.ID == oid {
			copied := p
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *ProductRepository) Update(_ context.Context, id string, req *models.UpdateProductRequest, imageURL string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID != oid {
			continue
		}
		p := &r.products[i]
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Price != nil {
			p.Price = *req.Price
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if req.ShortDescription != nil {
			p.ShortDescription = *req.ShortDescription
		}
		if req.Category != nil {
			p.Category = *req.Category
		}
		if req.Featured != nil {
			p.Featured = *req.Featured
		}
		if req.InStock != nil {
			p.InStock = *req.InStock
		}
		if imageURL != "" {
			p.Image = imageURL
		}
		p.UpdatedAt = time.Now()
		copied := *p
		return &copied, nil
	}
	return nil, common.ErrNotFound
}

func (r *ProductRepository) Delete(_ context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return common.ErrNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == oid {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

func (r *ProductRepository) List(_ context.Context, filter models.ProductFilter, page models.PageRequest) ([]models.Product, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := []models.Product{}
	for _, p := range r.products {
		if filter.Category != nil && p.Category != *filter.Category {
			continue
		}
		if filter.Featured != nil && p.Featured != *filter.Featured {
			continue
		}
		if filter.InStock != nil && p.InStock != *filter.InStock {
			continue
		}
		matched = append(matched, p)
	}

	sortProducts(matched, page.Sort)

	total := int64(len(matched))
	return paginate(matched, page), total, nil
}

func (r *ProductRepository) Featured(_ context.Context, limit int) ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := []models.Product{}
	for _, p := range r.products {
		if p.Featured && p.InStock {
			matched = append(matched, p)
		}
	}
	sortProducts(matched, nil)
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *ProductRepository) CountAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.products)), nil
}

func (r *ProductRepository) CountInStock(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for _, p := range r.products {
		if p.InStock {
			n++
		}
	}
	return n, nil
}

func (r *ProductRepository) FindOutOfStock(_ context.Context) ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := []models.Product{}
	for _, p := range r.products {
		if !p.InStock {
			matched = append(matched, p)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].UpdatedAt.After(matched[j].UpdatedAt)
	})
	return matched, nil
}

func sortProducts(products []models.Product, fields []models.SortField) {
	if len(fields) == 0 {
		fields = []models.SortField{{Field: "createdAt", Desc: true}}
	}
	key := fields[0]
	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i], products[j]
		if key.Desc {
			a, b = b, a
		}
		switch key.Field {
		case "price":
			return a.Price < b.Price
		case "name":
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	})
}

func paginate[T any](items []T, page models.PageRequest) []T {
	start := page.Skip()
	if start >= len(items) {
		return []T{}
	}
	end := start + page.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

type OrderRepository struct {
	mu     sync.Mutex
	orders []models.Order
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Insert(_ context.Context, o *models.Order) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o.ID = primitive.NewObjectID()
	r.orders = append(r.orders, *o)
	return o, nil
}

func (r *OrderRepository) FindByID(_ context.Context, id string) (*models.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range r.orders {
		if o.ID == oid {
			copied := o
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *OrderRepository) UpdateStatus(_ context.Context, id string, status models.OrderStatus) (*models.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == oid {
			r.orders[i].Status = string(status)
			copied := r.orders[i]
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *OrderRepository) List(_ context.Context, filter models.OrderFilter, page models.PageRequest) ([]models.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := []models.Order{}
	for _, o := range r.orders {
		if filter.Status != nil && o.Status != *filter.Status {
			continue
		}
		matched = append(matched, o)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].OrderDate.After(matched[j].OrderDate)
	})

	total := int64(len(matched))
	return paginate(matched, page), total, nil
}

func (r *OrderRepository) Recent(_ context.Context, limit int) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := append([]models.Order{}, r.orders...)
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].OrderDate.After(matched[j].OrderDate)
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *OrderRepository) CountAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.orders)), nil
}

func (r *OrderRepository) CountByStatus(_ context.Context, status models.OrderStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for _, o := range r.orders {
		if o.Status == string(status) {
			n++
		}
	}
	return n, nil
}

func (r *OrderRepository) TotalRevenue(_ context.Context) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var total float64
	for _, o := range r.orders {
		total += o.TotalAmount
	}
	return total, nil
}

func (r *OrderRepository) SalesByStatus(_ context.Context) ([]models.StatusSales, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	buckets := map[string]*models.StatusSales{}
	for _, o := range r.orders {
		b, ok := buckets[o.Status]
		if !ok {
			b = &models.StatusSales{Status: o.Status}
			buckets[o.Status] = b
		}
		b.Count++
		b.Total += o.TotalAmount
	}

	sales := []models.StatusSales{}
	for _, b := range buckets {
		sales = append(sales, *b)
	}
	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].Count > sales[j].Count
	})
	return sales, nil
}

type AdminRepository struct {
	mu     sync.Mutex
	admins []models.Admin
}

func NewAdminRepository() *AdminRepository {
	return &AdminRepository{}
}

func (r *AdminRepository) Insert(_ context.Context, a *models.Admin) (*models.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.admins {
		if existing.Email == a.Email || existing.Username == a.Username {
			return nil, common.ErrConflict
		}
	}

	now := time.Now()
	a.ID = primitive.NewObjectID()
	a.CreatedAt = now
	a.UpdatedAt = now
	r.admins = append(r.admins, *a)
	return a, nil
}

func (r *AdminRepository) FindByID(_ context.Context, id string) (*models.Admin, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.admins {
		if a.ID == oid {
			copied := a
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *AdminRepository) FindByEmail(_ context.Context, email string) (*models.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.admins {
		if a.Email == email {
			copied := a
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *AdminRepository) ExistsByEmailOrUsername(_ context.Context, email, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.admins {
		if a.Email == email || a.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *AdminRepository) UpdateProfile(_ context.Context, id string, req *models.UpdateProfileRequest) (*models.Admin, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.admins {
		if r.admins[i].ID != oid {
			continue
		}
		a := &r.admins[i]
		if req.Name != nil {
			a.Name = *req.Name
		}
		if req.Email != nil {
			a.Email = *req.Email
		}
		if req.Username != nil {
			a.Username = *req.Username
		}
		a.UpdatedAt = time.Now()
		copied := *a
		return &copied, nil
	}
	return nil, common.ErrNotFound
}

func (r *AdminRepository) UpdateLastLogin(_ context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return common.ErrNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.admins {
		if r.admins[i].ID == oid {
			r.admins[i].LastLogin = time.Now()
			return nil
		}
	}
	return common.ErrNotFound
}
