package handler

import (
	"net/http"

	"scent-shop/internal/model"
	"scent-shop/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// CategoryHandler handles category-related HTTP requests.
type CategoryHandler struct {
	service service.CategoryService
	logger  zerolog.Logger
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(service service.CategoryService, logger zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		logger:  logger.With().Str("handler", "category").Logger(),
	}
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	category, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input model.CategoryInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, err, h.logger)
		return
	}

	if _, err := h.service.Create(r.Context(), input); err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeText(w, http.StatusCreated, "Category added")
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.CategoryPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, err, h.logger)
		return
	}

	if err := h.service.UpdateByID(r.Context(), chi.URLParam(r, "id"), patch); err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeText(w, http.StatusOK, "Category updated")
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteByID(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeText(w, http.StatusOK, "Category deleted")
}
