package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"beautytime/internal/common"
	"beautytime/internal/models"
)

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func respondWithData(w http.ResponseWriter, code int, data interface{}) {
	respondWithJSON(w, code, models.Response{Success: true, Data: data})
}

func respondWithError(w http.ResponseWriter, code int, errorCode, message string) {
	respondWithJSON(w, code, models.Response{Success: false, Error: errorCode, Message: message})
}

// respondWithServiceError maps the error taxonomy onto HTTP statuses.
func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, common.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, "invalid_input", err.Error())
	case errors.Is(err, common.ErrConflict):
		respondWithError(w, http.StatusBadRequest, "conflict", err.Error())
	case errors.Is(err, common.ErrOutOfStock):
		respondWithError(w, http.StatusBadRequest, "out_of_stock", err.Error())
	case errors.Is(err, common.ErrInvalidTransition):
		respondWithError(w, http.StatusBadRequest, "invalid_transition", err.Error())
	case errors.Is(err, common.ErrUnauthorized):
		respondWithError(w, http.StatusUnauthorized, "unauthorized", "Invalid credentials")
	default:
		respondWithError(w, http.StatusInternalServerError, "internal_error", "Server Error")
	}
}

// parsePageRequest reads sort/page/limit query params with the original
// defaults (page 1, limit 10).
func parsePageRequest(r *http.Request) models.PageRequest {
	q := r.URL.Query()

	page := 1
	if v := q.Get("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			page = p
		}
	}

	limit := 10
	if v := q.Get("limit"); v != "" {
		if l, err := strconv.Atoi(v); err == nil && l > 0 {
			limit = l
		}
	}

	return models.PageRequest{
		Sort:  models.ParseSort(q.Get("sort")),
		Page:  page,
		Limit: limit,
	}
}

func parseLimit(r *http.Request, fallback int) int {
	if v := r.URL.Query().Get("limit"); v != "" {
		if l, err := strconv.Atoi(v); err == nil && l > 0 {
			return l
		}
	}
	return fallback
}

func queryBool(r *http.Request, name string) *bool {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	b := v == "true"
	return &b
}

func queryString(r *http.Request, name string) *string {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	return &v
}
