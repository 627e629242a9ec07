package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/service"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categoryService service.CategoryService
	validator       *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		validator:       shared.NewValidator(),
	}
}

// ListCategories handles GET /api/categories requests
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.ListCategories(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list categories")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, categoriesToResponse(categories))
}

// GetCategory handles GET /api/categories/{id} requests
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	category, err := h.categoryService.GetCategory(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get category")
		return
	}
	if category == nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Category not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, categoryToResponse(category))
}

// CreateCategory handles POST /api/categories requests
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	category, err := h.categoryService.CreateCategory(r.Context(), req.Name, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create category")
		return
	}

	requestLogger(r).Info("category created", "category_id", category.ID)
	shared.RespondCreated(w, r, "/api/categories/"+category.ID.String(), categoryToResponse(category))
}

// UpdateCategory handles PUT /api/categories/{id} requests
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateCategoryRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	category, err := h.categoryService.UpdateCategory(r.Context(), id, req.Name, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update category")
		return
	}
	if category == nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Category not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, categoryToResponse(category))
}

// DeleteCategory handles DELETE /api/categories/{id} requests
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	deleted, err := h.categoryService.DeleteCategory(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete category")
		return
	}
	if !deleted {
		shared.RespondWithError(w, r, http.StatusNotFound, "Category not found")
		return
	}

	shared.RespondNoContent(w)
}
