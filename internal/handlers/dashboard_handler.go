package handlers

import (
	"net/http"

	"beautytime/internal/models"
	"beautytime/internal/services"

	"github.com/rs/zerolog"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
	logger           zerolog.Logger
}

func NewDashboardHandler(dashboardService *services.DashboardService, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.Stats(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to compute dashboard stats")
		respondWithServiceError(w, err)
		return
	}
	respondWithData(w, http.StatusOK, stats)
}

func (h *DashboardHandler) RecentOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.dashboardService.RecentOrders(r.Context(), parseLimit(r, 5))
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list recent orders")
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, models.CountedResponse{
		Success: true,
		Count:   len(orders),
		Data:    orders,
	})
}

func (h *DashboardHandler) SalesByStatus(w http.ResponseWriter, r *http.Request) {
	sales, err := h.dashboardService.SalesByStatus(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to aggregate sales by status")
		respondWithServiceError(w, err)
		return
	}
	respondWithData(w, http.StatusOK, sales)
}

func (h *DashboardHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	products, err := h.dashboardService.LowStock(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list low-stock products")
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, models.CountedResponse{
		Success: true,
		Count:   len(products),
		Data:    products,
	})
}
