package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/portalaudio/cms/internal/catalog/domain"
	"github.com/portalaudio/cms/internal/catalog/http/dto"
	catalogUseCase "github.com/portalaudio/cms/internal/catalog/usecase"
	"github.com/portalaudio/cms/internal/httputil"
	customValidation "github.com/portalaudio/cms/internal/validation"
)

// ProductHandler handles HTTP requests for product operations.
type ProductHandler struct {
	productUseCase catalogUseCase.ProductUseCase
	logger         *slog.Logger
}

// NewProductHandler creates a new product handler with required dependencies.
func NewProductHandler(
	productUseCase catalogUseCase.ProductUseCase,
	logger *slog.Logger,
) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
		logger:         logger,
	}
}

// ListProductsHandler lists products, newest first.
// GET /v1/products?category=<slug>&featured=true&search=<term> - Public.
func (h *ProductHandler) ListProductsHandler(c *gin.Context) {
	offset, limit := httputil.ParsePagination(c)

	filter := domain.ProductFilter{
		CategorySlug: c.Query("category"),
		Search:       c.Query("search"),
	}
	if raw := c.Query("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			httputil.HandleValidationErrorGin(c,
				fmt.Errorf("invalid featured value: must be a boolean"),
				h.logger)
			return
		}
		filter.Featured = &featured
	}

	products, err := h.productUseCase.List(c.Request.Context(), filter, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapProductsToListResponse(products))
}

// GetProductHandler retrieves a product by slug with its category summary.
// GET /v1/products/:slug - Public.
func (h *ProductHandler) GetProductHandler(c *gin.Context) {
	product, err := h.productUseCase.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapProductToResponse(product))
}

// CreateProductHandler creates a new product.
// POST /v1/admin/products - Requires admin role.
// Returns 201 Created with the product, slug derived from name when absent.
func (h *ProductHandler) CreateProductHandler(c *gin.Context) {
	input, ok := h.bindProductRequest(c)
	if !ok {
		return
	}

	product, err := h.productUseCase.Create(c.Request.Context(), catalogUseCase.CreateProductInput(input))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapProductToResponse(product))
}

// UpdateProductHandler replaces the mutable fields of a product.
// PUT /v1/admin/products/:id - Requires admin role.
func (h *ProductHandler) UpdateProductHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid product id format: must be a valid UUID"),
			h.logger)
		return
	}

	input, ok := h.bindProductRequest(c)
	if !ok {
		return
	}

	product, err := h.productUseCase.Update(c.Request.Context(), id, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapProductToResponse(product))
}

// DeleteProductHandler removes a product.
// DELETE /v1/admin/products/:id - Requires admin role.
// Returns 204 No Content on success.
func (h *ProductHandler) DeleteProductHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid product id format: must be a valid UUID"),
			h.logger)
		return
	}

	if err := h.productUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// bindProductRequest parses, validates, and converts the product payload.
func (h *ProductHandler) bindProductRequest(c *gin.Context) (catalogUseCase.UpdateProductInput, bool) {
	var req dto.ProductRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return catalogUseCase.UpdateProductInput{}, false
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return catalogUseCase.UpdateProductInput{}, false
	}

	input := catalogUseCase.UpdateProductInput{
		Name:           req.Name,
		Slug:           req.Slug,
		Description:    req.Description,
		Specifications: req.Specifications,
		Price:          req.Price,
		Brand:          req.Brand,
		Origin:         req.Origin,
		Availability:   req.Availability,
		Images:         req.Images,
		Featured:       req.Featured,
	}
	if req.CategoryID != "" {
		categoryID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			httputil.HandleValidationErrorGin(c,
				fmt.Errorf("invalid category_id format: must be a valid UUID"),
				h.logger)
			return catalogUseCase.UpdateProductInput{}, false
		}
		input.CategoryID = &categoryID
	}

	return input, true
}
