// Package http provides HTTP handlers for testimonial operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/portalaudio/cms/internal/httputil"
	"github.com/portalaudio/cms/internal/testimonial/domain"
	"github.com/portalaudio/cms/internal/testimonial/http/dto"
	testimonialUseCase "github.com/portalaudio/cms/internal/testimonial/usecase"
	customValidation "github.com/portalaudio/cms/internal/validation"
)

// TestimonialHandler handles HTTP requests for testimonial operations.
type TestimonialHandler struct {
	testimonialUseCase testimonialUseCase.TestimonialUseCase
	logger             *slog.Logger
}

// NewTestimonialHandler creates a new testimonial handler with required dependencies.
func NewTestimonialHandler(
	testimonialUseCase testimonialUseCase.TestimonialUseCase,
	logger *slog.Logger,
) *TestimonialHandler {
	return &TestimonialHandler{
		testimonialUseCase: testimonialUseCase,
		logger:             logger,
	}
}

// ListTestimonialsHandler lists testimonials, newest first.
// GET /v1/testimonials?featured=true - Public.
func (h *TestimonialHandler) ListTestimonialsHandler(c *gin.Context) {
	offset, limit := httputil.ParsePagination(c)

	filter := domain.Filter{}
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

	testimonials, err := h.testimonialUseCase.List(c.Request.Context(), filter, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTestimonialsToListResponse(testimonials))
}

// GetTestimonialHandler retrieves a testimonial by ID.
// GET /v1/admin/testimonials/:id - Requires admin role.
func (h *TestimonialHandler) GetTestimonialHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid testimonial id format: must be a valid UUID"),
			h.logger)
		return
	}

	testimonial, err := h.testimonialUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTestimonialToResponse(testimonial))
}

// CreateTestimonialHandler creates a new testimonial.
// POST /v1/admin/testimonials - Requires admin role.
// Returns 201 Created with the testimonial.
func (h *TestimonialHandler) CreateTestimonialHandler(c *gin.Context) {
	input, ok := h.bindTestimonialRequest(c)
	if !ok {
		return
	}

	testimonial, err := h.testimonialUseCase.Create(
		c.Request.Context(), testimonialUseCase.CreateTestimonialInput(input))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapTestimonialToResponse(testimonial))
}

// UpdateTestimonialHandler replaces the mutable fields of a testimonial.
// PUT /v1/admin/testimonials/:id - Requires admin role.
func (h *TestimonialHandler) UpdateTestimonialHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid testimonial id format: must be a valid UUID"),
			h.logger)
		return
	}

	input, ok := h.bindTestimonialRequest(c)
	if !ok {
		return
	}

	testimonial, err := h.testimonialUseCase.Update(c.Request.Context(), id, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTestimonialToResponse(testimonial))
}

// DeleteTestimonialHandler removes a testimonial.
// DELETE /v1/admin/testimonials/:id - Requires admin role.
// Returns 204 No Content on success.
func (h *TestimonialHandler) DeleteTestimonialHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid testimonial id format: must be a valid UUID"),
			h.logger)
		return
	}

	if err := h.testimonialUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// bindTestimonialRequest parses, validates, and converts the testimonial payload.
func (h *TestimonialHandler) bindTestimonialRequest(c *gin.Context) (testimonialUseCase.UpdateTestimonialInput, bool) {
	var req dto.TestimonialRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return testimonialUseCase.UpdateTestimonialInput{}, false
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return testimonialUseCase.UpdateTestimonialInput{}, false
	}

	input := testimonialUseCase.UpdateTestimonialInput{
		CustomerName: req.CustomerName,
		Company:      req.Company,
		Content:      req.Content,
		Rating:       req.Rating,
		Featured:     req.Featured,
	}
	if req.ProductID != "" {
		productID, err := uuid.Parse(req.ProductID)
		if err != nil {
			httputil.HandleValidationErrorGin(c,
				fmt.Errorf("invalid product_id format: must be a valid UUID"),
				h.logger)
			return testimonialUseCase.UpdateTestimonialInput{}, false
		}
		input.ProductID = &productID
	}

	return input, true
}
