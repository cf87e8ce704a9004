// Package http provides HTTP handlers for inquiry operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/portalaudio/cms/internal/httputil"
	"github.com/portalaudio/cms/internal/inquiry/domain"
	"github.com/portalaudio/cms/internal/inquiry/http/dto"
	inquiryUseCase "github.com/portalaudio/cms/internal/inquiry/usecase"
	customValidation "github.com/portalaudio/cms/internal/validation"
)

// InquiryHandler handles HTTP requests for inquiry operations.
type InquiryHandler struct {
	inquiryUseCase inquiryUseCase.InquiryUseCase
	logger         *slog.Logger
}

// NewInquiryHandler creates a new inquiry handler with required dependencies.
func NewInquiryHandler(
	inquiryUseCase inquiryUseCase.InquiryUseCase,
	logger *slog.Logger,
) *InquiryHandler {
	return &InquiryHandler{
		inquiryUseCase: inquiryUseCase,
		logger:         logger,
	}
}

// SubmitInquiryHandler accepts a public contact-form submission.
// POST /v1/inquiries - Public, no session required.
// Returns 201 Created with the inquiry, status fixed to "new".
func (h *InquiryHandler) SubmitInquiryHandler(c *gin.Context) {
	var req dto.SubmitInquiryRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := inquiryUseCase.SubmitInquiryInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}
	if req.ProductID != "" {
		productID, err := uuid.Parse(req.ProductID)
		if err != nil {
			httputil.HandleValidationErrorGin(c,
				fmt.Errorf("invalid product_id format: must be a valid UUID"),
				h.logger)
			return
		}
		input.ProductID = &productID
	}

	inquiry, err := h.inquiryUseCase.Submit(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapInquiryToResponse(inquiry))
}

// ListInquiriesHandler lists inquiries, newest first.
// GET /v1/admin/inquiries?status=<status> - Requires admin role.
func (h *InquiryHandler) ListInquiriesHandler(c *gin.Context) {
	offset, limit := httputil.ParsePagination(c)

	filter := domain.Filter{
		Status: domain.Status(c.Query("status")),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid status value: must be new, in_progress or resolved"),
			h.logger)
		return
	}

	inquiries, err := h.inquiryUseCase.List(c.Request.Context(), filter, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapInquiriesToListResponse(inquiries))
}

// GetInquiryHandler retrieves an inquiry by ID.
// GET /v1/admin/inquiries/:id - Requires admin role.
func (h *InquiryHandler) GetInquiryHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid inquiry id format: must be a valid UUID"),
			h.logger)
		return
	}

	inquiry, err := h.inquiryUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapInquiryToResponse(inquiry))
}

// UpdateInquiryStatusHandler changes the handling state of an inquiry.
// PUT /v1/admin/inquiries/:id - Requires admin role.
// Status is the only mutable field; any other payload field is ignored.
func (h *InquiryHandler) UpdateInquiryStatusHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid inquiry id format: must be a valid UUID"),
			h.logger)
		return
	}

	var req dto.UpdateInquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	inquiry, err := h.inquiryUseCase.UpdateStatus(c.Request.Context(), id, domain.Status(req.Status))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapInquiryToResponse(inquiry))
}

// DeleteInquiryHandler removes an inquiry.
// DELETE /v1/admin/inquiries/:id - Requires admin role.
// Returns 204 No Content on success.
func (h *InquiryHandler) DeleteInquiryHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid inquiry id format: must be a valid UUID"),
			h.logger)
		return
	}

	if err := h.inquiryUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
