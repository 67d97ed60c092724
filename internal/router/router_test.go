package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"beautytime/internal/config"
	"beautytime/internal/models"
	"beautytime/internal/repository/memory"
	"beautytime/internal/services"
	"beautytime/internal/upload"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	server   *httptest.Server
	products *memory.ProductRepository
	orders   *memory.OrderRepository
	admins   *memory.AdminRepository
	cfg      config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := config.Config{
		Port:      "5000",
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
		UploadDir: t.TempDir(),
		BaseURL:   "http://localhost:5000",
	}

	saver, err := upload.NewSaver(cfg.UploadDir, cfg.BaseURL)
	require.NoError(t, err)

	env := &testEnv{
		products: memory.NewProductRepository(),
		orders:   memory.NewOrderRepository(),
		admins:   memory.NewAdminRepository(),
		cfg:      cfg,
	}

	repos := Repositories{
		Products: env.products,
		Orders:   env.orders,
		Admins:   env.admins,
	}

	env.server = httptest.NewServer(SetupRouter(repos, saver, cfg, zerolog.Nop()))
	t.Cleanup(env.server.Close)
	return env
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, e.server.URL+path, &buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, out.Bytes()
}

func (e *testEnv) registerAdmin(t *testing.T) string {
	t.Helper()

	resp, body := e.request(t, http.MethodPost, "/api/admin/register", "", models.RegisterRequest{
		Username: "admin",
		Email:    "admin@beautystore.com",
		Password: "admin123",
		Name:     "Admin User",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var reg struct {
		Success bool                `json:"success"`
		Token   string              `json:"token"`
		Data    models.AdminProfile `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &reg))
	require.True(t, reg.Success)
	require.NotEmpty(t, reg.Token)
	return reg.Token
}

func (e *testEnv) seedProduct(t *testing.T, name string, price float64, inStock bool) *models.Product {
	t.Helper()
	p, err := e.products.Insert(context.Background(), &models.Product{
		Name:    name,
		Price:   price,
		InStock: inStock,
	})
	require.NoError(t, err)
	return p
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/orders"},
		{http.MethodGet, "/api/orders/recent"},
		{http.MethodPost, "/api/products"},
		{http.MethodDelete, "/api/products/64b0c0ffee0ddba11ad0beef"},
		{http.MethodGet, "/api/admin/profile"},
		{http.MethodGet, "/api/dashboard/stats"},
		{http.MethodGet, "/api/dashboard/low-stock"},
	}

	for _, tc := range protected {
		resp, body := env.request(t, tc.method, tc.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "%s %s: %s", tc.method, tc.path, body)
	}
}

func TestForeignSignedTokenRejected(t *testing.T) {
	env := newTestEnv(t)
	env.registerAdmin(t)

	forged, err := services.NewAuthService("different-secret", time.Hour, zerolog.Nop()).GenerateToken("whatever")
	require.NoError(t, err)

	resp, _ := env.request(t, http.MethodGet, "/api/orders", forged, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = env.request(t, http.MethodGet, "/api/orders", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPublicProductRoutes(t *testing.T) {
	env := newTestEnv(t)
	p := env.seedProduct(t, "Elysian Rose", 185, true)

	resp, body := env.request(t, http.MethodGet, "/api/products/"+p.ID.Hex(), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var single struct {
		Success bool           `json:"success"`
		Data    models.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &single))
	assert.Equal(t, "Elysian Rose", single.Data.Name)

	resp, _ = env.request(t, http.MethodGet, "/api/products/64b0c0ffee0ddba11ad0beef", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = env.request(t, http.MethodGet, "/api/products/not-hex", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProductListPagination(t *testing.T) {
	env := newTestEnv(t)
	for i := 0; i < 5; i++ {
		env.seedProduct(t, fmt.Sprintf("Perfume %d", i), 100, true)
	}

	resp, body := env.request(t, http.MethodGet, "/api/products?page=2&limit=2", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list struct {
		Success     bool             `json:"success"`
		Count       int              `json:"count"`
		Total       int64            `json:"total"`
		Pages       int64            `json:"pages"`
		CurrentPage int              `json:"currentPage"`
		Data        []models.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &list))
	assert.True(t, list.Success)
	assert.Equal(t, 2, list.Count)
	assert.Len(t, list.Data, 2)
	assert.Equal(t, int64(5), list.Total)
	assert.Equal(t, int64(3), list.Pages)
	assert.Equal(t, 2, list.CurrentPage)
}

func TestOrderLifecycleScenario(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAdmin(t)
	p := env.seedProduct(t, "Oud Royale", 100, true)

	type orderEnvelope struct {
		Success bool         `json:"success"`
		Data    models.Order `json:"data"`
		Message string       `json:"message"`
		Error   string       `json:"error"`
	}

	// Place the order anonymously.
	resp, body := env.request(t, http.MethodPost, "/api/orders", "", models.CreateOrderRequest{
		ProductID:       p.ID.Hex(),
		Quantity:        3,
		CustomerName:    "Emma Thompson",
		CustomerEmail:   "emma@example.com",
		CustomerPhone:   "555-0100",
		ShippingAddress: "42 Rosewood Lane",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var created orderEnvelope
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, 300.0, created.Data.TotalAmount)
	assert.Equal(t, "pending", created.Data.Status)
	orderID := created.Data.ID.Hex()

	// Jumping straight to shipped is rejected by the transition table.
	resp, body = env.request(t, http.MethodPut, "/api/orders/"+orderID+"/status", token,
		models.UpdateOrderStatusRequest{Status: "shipped"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode, string(body))

	// An unknown status value is rejected outright.
	resp, _ = env.request(t, http.MethodPut, "/api/orders/"+orderID+"/status", token,
		models.UpdateOrderStatusRequest{Status: "refunded"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	for _, status := range []string{"processing", "shipped"} {
		resp, body = env.request(t, http.MethodPut, "/api/orders/"+orderID+"/status", token,
			models.UpdateOrderStatusRequest{Status: status})
		require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	}

	resp, body = env.request(t, http.MethodGet, "/api/orders/"+orderID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched orderEnvelope
	require.NoError(t, json.Unmarshal(body, &fetched))
	assert.Equal(t, "shipped", fetched.Data.Status)
	assert.Equal(t, 300.0, fetched.Data.TotalAmount)
}

func TestOrderForOutOfStockProduct(t *testing.T) {
	env := newTestEnv(t)
	p := env.seedProduct(t, "Sold Out", 75, false)

	resp, body := env.request(t, http.MethodPost, "/api/orders", "", models.CreateOrderRequest{
		ProductID:       p.ID.Hex(),
		Quantity:        1,
		CustomerName:    "James Wilson",
		CustomerEmail:   "james@example.com",
		ShippingAddress: "1 Main St",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode, string(body))

	count, err := env.orders.CountAll(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAdminLoginAndProfile(t *testing.T) {
	env := newTestEnv(t)
	env.registerAdmin(t)

	resp, _ := env.request(t, http.MethodPost, "/api/admin/login", "", models.LoginRequest{
		Email:    "admin@beautystore.com",
		Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body := env.request(t, http.MethodPost, "/api/admin/login", "", models.LoginRequest{
		Email:    "admin@beautystore.com",
		Password: "admin123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(body, &login))
	require.NotEmpty(t, login.Token)

	resp, body = env.request(t, http.MethodGet, "/api/admin/profile", login.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var profile struct {
		Success bool         `json:"success"`
		Data    models.Admin `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &profile))
	assert.Equal(t, "admin@beautystore.com", profile.Data.Email)
	assert.False(t, profile.Data.LastLogin.IsZero())

	name := "Renamed Admin"
	resp, body = env.request(t, http.MethodPut, "/api/admin/profile", login.Token,
		models.UpdateProfileRequest{Name: &name})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	require.NoError(t, json.Unmarshal(body, &profile))
	assert.Equal(t, "Renamed Admin", profile.Data.Name)
}

func TestDuplicateRegistrationConflict(t *testing.T) {
	env := newTestEnv(t)
	env.registerAdmin(t)

	resp, body := env.request(t, http.MethodPost, "/api/admin/register", "", models.RegisterRequest{
		Username: "admin2",
		Email:    "admin@beautystore.com",
		Password: "admin123",
		Name:     "Second Admin",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, string(body))
}

func TestProductCRUDWithToken(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAdmin(t)

	resp, body := env.request(t, http.MethodPost, "/api/products", token, models.CreateProductRequest{
		Name:             "Solar Bloom",
		Price:            175,
		ShortDescription: "Bright florals with citrus and amber",
		Category:         "floral",
		Featured:         true,
		InStock:          true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var created struct {
		Data models.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &created))
	id := created.Data.ID.Hex()

	price := 199.0
	resp, body = env.request(t, http.MethodPut, "/api/products/"+id, token,
		models.UpdateProductRequest{Price: &price})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, 199.0, created.Data.Price)
	assert.Equal(t, "Solar Bloom", created.Data.Name)

	resp, _ = env.request(t, http.MethodDelete, "/api/products/"+id, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = env.request(t, http.MethodGet, "/api/products/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProductCreateWithMultipartImage(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAdmin(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("name", "Amber Noir"))
	require.NoError(t, writer.WriteField("price", "210"))
	require.NoError(t, writer.WriteField("category", "oriental"))
	require.NoError(t, writer.WriteField("featured", "true"))
	require.NoError(t, writer.WriteField("inStock", "true"))
	part, err := writer.CreateFormFile("image", "amber.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake-jpeg"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, env.server.URL+"/api/products", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		Data models.Product `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "Amber Noir", created.Data.Name)
	assert.Equal(t, 210.0, created.Data.Price)
	assert.True(t, created.Data.Featured)
	assert.True(t, strings.HasPrefix(created.Data.Image, env.cfg.BaseURL+"/uploads/"), created.Data.Image)

	// The uploaded file is served back from the static route.
	imgResp, body := env.request(t, http.MethodGet, created.Data.Image[len(env.cfg.BaseURL):], "", nil)
	require.Equal(t, http.StatusOK, imgResp.StatusCode)
	assert.Equal(t, "fake-jpeg", string(body))
}

func TestDashboardEndpoints(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAdmin(t)

	env.seedProduct(t, "In", 10, true)
	env.seedProduct(t, "Out", 10, false)

	p := env.seedProduct(t, "Ordered", 100, true)
	resp, _ := env.request(t, http.MethodPost, "/api/orders", "", models.CreateOrderRequest{
		ProductID:       p.ID.Hex(),
		Quantity:        2,
		CustomerName:    "Sophia Chen",
		CustomerEmail:   "sophia@example.com",
		ShippingAddress: "7 Elm St",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := env.request(t, http.MethodGet, "/api/dashboard/stats", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats struct {
		Success bool                  `json:"success"`
		Data    models.DashboardStats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &stats))
	assert.Equal(t, int64(3), stats.Data.Products.Total)
	assert.Equal(t, int64(2), stats.Data.Products.InStock)
	assert.Equal(t, int64(1), stats.Data.Orders.Total)
	assert.Equal(t, int64(1), stats.Data.Orders.Pending)
	assert.Equal(t, 200.0, stats.Data.Revenue.Total)

	resp, body = env.request(t, http.MethodGet, "/api/dashboard/low-stock", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var low struct {
		Count int              `json:"count"`
		Data  []models.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &low))
	require.Equal(t, 1, low.Count)
	assert.Equal(t, "Out", low.Data[0].Name)

	resp, body = env.request(t, http.MethodGet, "/api/dashboard/sales-by-status", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var sales struct {
		Data []models.StatusSales `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &sales))
	require.Len(t, sales.Data, 1)
	assert.Equal(t, "pending", sales.Data[0].Status)
	assert.Equal(t, 200.0, sales.Data[0].Total)
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.request(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}
