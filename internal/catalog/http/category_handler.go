// Package http provides HTTP handlers for catalog operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/portalaudio/cms/internal/catalog/http/dto"
	catalogUseCase "github.com/portalaudio/cms/internal/catalog/usecase"
	"github.com/portalaudio/cms/internal/httputil"
	customValidation "github.com/portalaudio/cms/internal/validation"
)

// CategoryHandler handles HTTP requests for category operations.
type CategoryHandler struct {
	categoryUseCase catalogUseCase.CategoryUseCase
	logger          *slog.Logger
}

// NewCategoryHandler creates a new category handler with required dependencies.
func NewCategoryHandler(
	categoryUseCase catalogUseCase.CategoryUseCase,
	logger *slog.Logger,
) *CategoryHandler {
	return &CategoryHandler{
		categoryUseCase: categoryUseCase,
		logger:          logger,
	}
}

// ListCategoriesHandler lists categories ordered by name.
// GET /v1/categories?offset=0&limit=50 - Public.
func (h *CategoryHandler) ListCategoriesHandler(c *gin.Context) {
	offset, limit := httputil.ParsePagination(c)

	categories, err := h.categoryUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCategoriesToListResponse(categories))
}

// GetCategoryHandler retrieves a category by slug.
// GET /v1/categories/:slug - Public.
func (h *CategoryHandler) GetCategoryHandler(c *gin.Context) {
	category, err := h.categoryUseCase.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCategoryToResponse(category))
}

// CreateCategoryHandler creates a new category.
// POST /v1/admin/categories - Requires admin role.
// Returns 201 Created with the category, slug derived from name when absent.
func (h *CategoryHandler) CreateCategoryHandler(c *gin.Context) {
	var req dto.CategoryRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	category, err := h.categoryUseCase.Create(c.Request.Context(), catalogUseCase.CreateCategoryInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapCategoryToResponse(category))
}

// UpdateCategoryHandler replaces the mutable fields of a category.
// PUT /v1/admin/categories/:id - Requires admin role.
func (h *CategoryHandler) UpdateCategoryHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid category id format: must be a valid UUID"),
			h.logger)
		return
	}

	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	category, err := h.categoryUseCase.Update(c.Request.Context(), id, catalogUseCase.UpdateCategoryInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCategoryToResponse(category))
}

// DeleteCategoryHandler removes a category.
// DELETE /v1/admin/categories/:id - Requires admin role.
// Returns 204 No Content on success.
func (h *CategoryHandler) DeleteCategoryHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid category id format: must be a valid UUID"),
			h.logger)
		return
	}

	if err := h.categoryUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
