package handler

import (
	"net/http"

	"scent-shop/internal/model"
	"scent-shop/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /products/{id}.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Create handles POST /products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input model.ProductInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, err, h.logger)
		return
	}

	if _, err := h.service.Create(r.Context(), input); err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeText(w, http.StatusCreated, "Product added")
}

// Update handles PUT /products/{id}. The response is the same whether or not
// a product matched.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.ProductPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, err, h.logger)
		return
	}

	if err := h.service.UpdateByID(r.Context(), chi.URLParam(r, "id"), patch); err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeText(w, http.StatusOK, "Product updated")
}

// Delete handles DELETE /products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteByID(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeText(w, http.StatusOK, "Product deleted")
}
