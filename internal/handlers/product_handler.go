package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"beautytime/internal/models"
	"beautytime/internal/services"
	"beautytime/internal/upload"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

const maxUploadSize = 10 << 20 // 10 MiB

type ProductHandler struct {
	productService *services.ProductService
	saver          *upload.Saver
	logger         zerolog.Logger
}

func NewProductHandler(productService *services.ProductService, saver *upload.Saver, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		saver:          saver,
		logger:         logger,
	}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := models.ProductFilter{
		Category: queryString(r, "category"),
		Featured: queryBool(r, "featured"),
		InStock:  queryBool(r, "inStock"),
	}
	page := parsePageRequest(r)

	products, total, err := h.productService.List(r.Context(), filter, page)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list products")
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, models.ListResponse{
		Success:     true,
		Count:       len(products),
		Total:       total,
		Pages:       models.PageCount(total, page.Limit),
		CurrentPage: page.Page,
		Data:        products,
	})
}

func (h *ProductHandler) Featured(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.Featured(r.Context(), parseLimit(r, 6))
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list featured products")
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, models.CountedResponse{
		Success: true,
		Count:   len(products),
		Data:    products,
	})
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.productService.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithData(w, http.StatusOK, product)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProductRequest
	var imageURL string

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid multipart form")
			return
		}

		req.Name = r.FormValue("name")
		req.Description = r.FormValue("description")
		req.ShortDescription = r.FormValue("shortDescription")
		req.Category = r.FormValue("category")
		req.Image = r.FormValue("image")
		req.Price, _ = strconv.ParseFloat(r.FormValue("price"), 64)
		req.Featured = r.FormValue("featured") == "true"
		req.InStock = r.FormValue("inStock") == "true"

		url, ok := h.saveImage(w, r)
		if !ok {
			return
		}
		imageURL = url
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
			return
		}
	}

	product, err := h.productService.Create(r.Context(), &req, imageURL)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithData(w, http.StatusCreated, product)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateProductRequest
	var imageURL string

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid multipart form")
			return
		}

		req.Name = formString(r, "name")
		req.Description = formString(r, "description")
		req.ShortDescription = formString(r, "shortDescription")
		req.Category = formString(r, "category")
		req.ImageURL = formString(r, "imageUrl")
		req.Featured = formBool(r, "featured")
		req.InStock = formBool(r, "inStock")

		if v := formString(r, "price"); v != nil {
			price, err := strconv.ParseFloat(*v, 64)
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "invalid_input", "Invalid price value")
				return
			}
			req.Price = &price
		}

		url, ok := h.saveImage(w, r)
		if !ok {
			return
		}
		imageURL = url
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
			return
		}
	}

	product, err := h.productService.Update(r.Context(), mux.Vars(r)["id"], &req, imageURL)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithData(w, http.StatusOK, product)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.productService.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, models.Response{
		Success: true,
		Message: "Product deleted successfully",
	})
}

// saveImage stores an uploaded "image" file if one is attached. The bool
// reports whether the request can proceed.
func (h *ProductHandler) saveImage(w http.ResponseWriter, r *http.Request) (string, bool) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile {
			return "", true
		}
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid image upload")
		return "", false
	}
	defer file.Close()

	url, err := h.saver.Save(file, header)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to save uploaded image")
		respondWithError(w, http.StatusBadRequest, "upload_failed", err.Error())
		return "", false
	}
	return url, true
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

func formString(r *http.Request, name string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	if vals, ok := r.MultipartForm.Value[name]; ok && len(vals) > 0 {
		return &vals[0]
	}
	return nil
}

func formBool(r *http.Request, name string) *bool {
	v := formString(r, name)
	if v == nil {
		return nil
	}
	b := *v == "true"
	return &b
}
