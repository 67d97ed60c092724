package router

import (
	"net/http"

	"beautytime/internal/config"
	"beautytime/internal/handlers"
	"beautytime/internal/middleware"
	"beautytime/internal/repository"
	"beautytime/internal/services"
	"beautytime/internal/upload"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Repositories bundles the storage dependencies the router wires into
// services. Tests substitute in-memory implementations here.
type Repositories struct {
	Products repository.ProductRepository
	Orders   repository.OrderRepository
	Admins   repository.AdminRepository
}

func SetupRouter(repos Repositories, saver *upload.Saver, cfg config.Config, logger zerolog.Logger) *mux.Router {
	authService := services.NewAuthService(cfg.JWTSecret, cfg.JWTExpiry, logger)
	adminService := services.NewAdminService(repos.Admins, authService, logger)
	productService := services.NewProductService(repos.Products, logger)
	orderService := services.NewOrderService(repos.Orders, repos.Products, logger)
	dashboardService := services.NewDashboardService(repos.Products, repos.Orders, logger)

	adminHandler := handlers.NewAdminHandler(adminService, logger)
	productHandler := handlers.NewProductHandler(productService, saver, logger)
	orderHandler := handlers.NewOrderHandler(orderService, logger)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, logger)

	r := mux.NewRouter()

	rateLimiter := middleware.NewRateLimiter(rate.Limit(50), 100)

	r.Use(middleware.ErrorHandling(logger))
	r.Use(middleware.PerformanceMonitoring(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS())
	r.Use(rateLimiter.Middleware())

	authenticated := middleware.Authentication(authService, logger)

	api := r.PathPrefix("/api").Subrouter()

	products := api.PathPrefix("/products").Subrouter()
	products.HandleFunc("", productHandler.List).Methods("GET")
	products.HandleFunc("/featured", productHandler.Featured).Methods("GET")
	products.HandleFunc("/{id}", productHandler.Get).Methods("GET")

	protectedProducts := api.PathPrefix("/products").Subrouter()
	protectedProducts.Use(authenticated)
	protectedProducts.HandleFunc("", productHandler.Create).Methods("POST")
	protectedProducts.HandleFunc("/{id}", productHandler.Update).Methods("PUT")
	protectedProducts.HandleFunc("/{id}", productHandler.Delete).Methods("DELETE")

	orders := api.PathPrefix("/orders").Subrouter()
	orders.HandleFunc("", orderHandler.Create).Methods("POST")

	protectedOrders := api.PathPrefix("/orders").Subrouter()
	protectedOrders.Use(authenticated)
	protectedOrders.HandleFunc("", orderHandler.List).Methods("GET")
	protectedOrders.HandleFunc("/recent", orderHandler.Recent).Methods("GET")
	protectedOrders.HandleFunc("/{id}", orderHandler.Get).Methods("GET")
	protectedOrders.HandleFunc("/{id}/status", orderHandler.UpdateStatus).Methods("PUT")

	admin := api.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/register", adminHandler.Register).Methods("POST")
	admin.HandleFunc("/login", adminHandler.Login).Methods("POST")

	protectedAdmin := api.PathPrefix("/admin").Subrouter()
	protectedAdmin.Use(authenticated)
	protectedAdmin.HandleFunc("/profile", adminHandler.GetProfile).Methods("GET")
	protectedAdmin.HandleFunc("/profile", adminHandler.UpdateProfile).Methods("PUT")

	dashboard := api.PathPrefix("/dashboard").Subrouter()
	dashboard.Use(authenticated)
	dashboard.HandleFunc("/stats", dashboardHandler.Stats).Methods("GET")
	dashboard.HandleFunc("/recent-orders", dashboardHandler.RecentOrders).Methods("GET")
	dashboard.HandleFunc("/sales-by-status", dashboardHandler.SalesByStatus).Methods("GET")
	dashboard.HandleFunc("/low-stock", dashboardHandler.LowStock).Methods("GET")

	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))),
	).Methods("GET")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return r
}
