package handlers

import (
	"encoding/json"
	"net/http"

	"beautytime/internal/middleware"
	"beautytime/internal/models"
	"beautytime/internal/services"

	"github.com/rs/zerolog"
)

type AdminHandler struct {
	adminService *services.AdminService
	logger       zerolog.Logger
}

func NewAdminHandler(adminService *services.AdminService, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		logger:       logger,
	}
}

func (h *AdminHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	admin, token, err := h.adminService.Register(r.Context(), &req)
	if err != nil {
		h.logger.Warn().Err(err).Str("email", req.Email).Msg("Registration failed")
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, models.Response{
		Success: true,
		Token:   token,
		Data:    admin.Profile(),
	})
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	admin, token, err := h.adminService.Login(r.Context(), &req)
	if err != nil {
		h.logger.Warn().Str("email", req.Email).Msg("Login failed")
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, models.Response{
		Success: true,
		Token:   token,
		Data:    admin.Profile(),
	})
}

func (h *AdminHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetAdminID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "unauthorized", "Admin not authenticated")
		return
	}

	admin, err := h.adminService.GetProfile(r.Context(), adminID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithData(w, http.StatusOK, admin)
}

func (h *AdminHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetAdminID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "unauthorized", "Admin not authenticated")
		return
	}

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	admin, err := h.adminService.UpdateProfile(r.Context(), adminID, &req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithData(w, http.StatusOK, admin)
}
