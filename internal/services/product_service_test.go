package services

import (
	"context"
	"strings"
	"testing"

	"beautytime/internal/common"
	"beautytime/internal/models"
	"beautytime/internal/repository/memory"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductFixture(t *testing.T) (*ProductService, *memory.ProductRepository) {
	t.Helper()
	repo := memory.NewProductRepository()
	return NewProductService(repo, zerolog.Nop()), repo
}

func TestCreateProduct_Validation(t *testing.T) {
	svc, _ := newProductFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.CreateProductRequest{Price: 10}, "")
	require.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = svc.Create(ctx, &models.CreateProductRequest{Name: "Amber Noir", Price: 0}, "")
	require.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = svc.Create(ctx, &models.CreateProductRequest{
		Name:             "Amber Noir",
		Price:            210,
		ShortDescription: strings.Repeat("x", 51),
	}, "")
	require.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestCreateProduct_UploadedImageWins(t *testing.T) {
	svc, _ := newProductFixture(t)

	product, err := svc.Create(context.Background(), &models.CreateProductRequest{
		Name:  "Amber Noir",
		Price: 210,
		Image: "/assets/old.jpg",
	}, "http://localhost:5000/uploads/new.jpg")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000/uploads/new.jpg", product.Image)
}

func TestUpdateProduct_ImagePrecedence(t *testing.T) {
	svc, _ := newProductFixture(t)
	ctx := context.Background()

	product, err := svc.Create(ctx, &models.CreateProductRequest{
		Name:  "Velvet Orchid",
		Price: 165,
		Image: "/assets/original.jpg",
	}, "")
	require.NoError(t, err)
	id := product.ID.Hex()

	// No file, no explicit URL: image stays.
	name := "Velvet Orchid EDP"
	updated, err := svc.Update(ctx, id, &models.UpdateProductRequest{Name: &name}, "")
	require.NoError(t, err)
	assert.Equal(t, "/assets/original.jpg", updated.Image)

	// Explicit external URL replaces it.
	external := "https://cdn.example.com/orchid.jpg"
	updated, err = svc.Update(ctx, id, &models.UpdateProductRequest{ImageURL: &external}, "")
	require.NoError(t, err)
	assert.Equal(t, external, updated.Image)

	// A new upload beats the explicit URL.
	updated, err = svc.Update(ctx, id, &models.UpdateProductRequest{ImageURL: &external}, "http://localhost:5000/uploads/fresh.jpg")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000/uploads/fresh.jpg", updated.Image)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	svc, _ := newProductFixture(t)

	name := "Ghost"
	_, err := svc.Update(context.Background(), "not-a-hex-id", &models.UpdateProductRequest{Name: &name}, "")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestDeleteProduct(t *testing.T) {
	svc, _ := newProductFixture(t)
	ctx := context.Background()

	product, err := svc.Create(ctx, &models.CreateProductRequest{Name: "Aqua Sublime", Price: 155}, "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, product.ID.Hex()))
	require.ErrorIs(t, svc.Delete(ctx, product.ID.Hex()), common.ErrNotFound)
}

func TestFeatured_OnlyInStockAndCapped(t *testing.T) {
	svc, repo := newProductFixture(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := repo.Insert(ctx, &models.Product{Name: "Featured", Price: 100, Featured: true, InStock: true})
		require.NoError(t, err)
	}
	_, err := repo.Insert(ctx, &models.Product{Name: "Featured but gone", Price: 100, Featured: true, InStock: false})
	require.NoError(t, err)
	_, err = repo.Insert(ctx, &models.Product{Name: "Plain", Price: 100, InStock: true})
	require.NoError(t, err)

	products, err := svc.Featured(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, products, 3)
	for _, p := range products {
		assert.True(t, p.Featured)
		assert.True(t, p.InStock)
	}
}

func TestListProducts_FilterAndPagination(t *testing.T) {
	svc, repo := newProductFixture(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := repo.Insert(ctx, &models.Product{Name: "Floral", Price: 100, Category: "floral", InStock: true})
		require.NoError(t, err)
	}
	_, err := repo.Insert(ctx, &models.Product{Name: "Woody", Price: 100, Category: "woody", InStock: true})
	require.NoError(t, err)

	category := "floral"
	page := models.PageRequest{Page: 2, Limit: 2}
	products, total, err := svc.List(ctx, models.ProductFilter{Category: &category}, page)
	require.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, int64(5), total)
	assert.Equal(t, int64(3), models.PageCount(total, page.Limit))
}
