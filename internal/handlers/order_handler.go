package handlers

import (
	"encoding/json"
	"net/http"

	"beautytime/internal/models"
	"beautytime/internal/services"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type OrderHandler struct {
	orderService *services.OrderService
	logger       zerolog.Logger
}

func NewOrderHandler(orderService *services.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	order, err := h.orderService.Create(r.Context(), &req)
	if err != nil {
		h.logger.Warn().Err(err).Str("product_id", req.ProductID).Msg("Order creation failed")
		respondWithServiceError(w, err)
		return
	}

	respondWithData(w, http.StatusCreated, order)
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := models.OrderFilter{
		Status: queryString(r, "status"),
	}
	page := parsePageRequest(r)

	orders, total, err := h.orderService.List(r.Context(), filter, page)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list orders")
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, models.ListResponse{
		Success:     true,
		Count:       len(orders),
		Total:       total,
		Pages:       models.PageCount(total, page.Limit),
		CurrentPage: page.Page,
		Data:        orders,
	})
}

func (h *OrderHandler) Recent(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.Recent(r.Context(), parseLimit(r, 5))
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

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithData(w, http.StatusOK, order)
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	order, err := h.orderService.UpdateStatus(r.Context(), mux.Vars(r)["id"], req.Status)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithData(w, http.StatusOK, order)
}
