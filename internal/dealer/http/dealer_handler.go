// Package http provides HTTP handlers for dealer operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/portalaudio/cms/internal/dealer/domain"
	"github.com/portalaudio/cms/internal/dealer/http/dto"
	dealerUseCase "github.com/portalaudio/cms/internal/dealer/usecase"
	"github.com/portalaudio/cms/internal/httputil"
	customValidation "github.com/portalaudio/cms/internal/validation"
)

// DealerHandler handles HTTP requests for dealer operations.
type DealerHandler struct {
	dealerUseCase dealerUseCase.DealerUseCase
	logger        *slog.Logger
}

// NewDealerHandler creates a new dealer handler with required dependencies.
func NewDealerHandler(
	dealerUseCase dealerUseCase.DealerUseCase,
	logger *slog.Logger,
) *DealerHandler {
	return &DealerHandler{
		dealerUseCase: dealerUseCase,
		logger:        logger,
	}
}

// ListDealersHandler lists active dealers ordered by city.
// GET /v1/dealers?region=<region> - Public.
// Inactive dealers are never included.
func (h *DealerHandler) ListDealersHandler(c *gin.Context) {
	offset, limit := httputil.ParsePagination(c)

	dealers, err := h.dealerUseCase.ListActive(c.Request.Context(), c.Query("region"), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDealersToListResponse(dealers))
}

// ListAllDealersHandler lists dealers regardless of status.
// GET /v1/admin/dealers?region=<region>&status=<status> - Requires admin role.
func (h *DealerHandler) ListAllDealersHandler(c *gin.Context) {
	offset, limit := httputil.ParsePagination(c)

	filter := domain.Filter{
		Region: c.Query("region"),
		Status: domain.Status(c.Query("status")),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid status value: must be active or inactive"),
			h.logger)
		return
	}

	dealers, err := h.dealerUseCase.List(c.Request.Context(), filter, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDealersToListResponse(dealers))
}

// GetDealerHandler retrieves a dealer by ID.
// GET /v1/admin/dealers/:id - Requires admin role.
func (h *DealerHandler) GetDealerHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid dealer id format: must be a valid UUID"),
			h.logger)
		return
	}

	dealer, err := h.dealerUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDealerToResponse(dealer))
}

// CreateDealerHandler creates a new dealer.
// POST /v1/admin/dealers - Requires admin role.
// Returns 201 Created with the dealer, status defaulting to active.
func (h *DealerHandler) CreateDealerHandler(c *gin.Context) {
	input, ok := h.bindDealerRequest(c)
	if !ok {
		return
	}

	dealer, err := h.dealerUseCase.Create(c.Request.Context(), dealerUseCase.CreateDealerInput(input))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapDealerToResponse(dealer))
}

// UpdateDealerHandler replaces the mutable fields of a dealer.
// PUT /v1/admin/dealers/:id - Requires admin role.
func (h *DealerHandler) UpdateDealerHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid dealer id format: must be a valid UUID"),
			h.logger)
		return
	}

	input, ok := h.bindDealerRequest(c)
	if !ok {
		return
	}

	dealer, err := h.dealerUseCase.Update(c.Request.Context(), id, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDealerToResponse(dealer))
}

// DeleteDealerHandler removes a dealer.
// DELETE /v1/admin/dealers/:id - Requires admin role.
// Returns 204 No Content on success.
func (h *DealerHandler) DeleteDealerHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid dealer id format: must be a valid UUID"),
			h.logger)
		return
	}

	if err := h.dealerUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// bindDealerRequest parses, validates, and converts the dealer payload.
func (h *DealerHandler) bindDealerRequest(c *gin.Context) (dealerUseCase.UpdateDealerInput, bool) {
	var req dto.DealerRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return dealerUseCase.UpdateDealerInput{}, false
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return dealerUseCase.UpdateDealerInput{}, false
	}

	return dealerUseCase.UpdateDealerInput{
		Name:      req.Name,
		Address:   req.Address,
		City:      req.City,
		Region:    req.Region,
		Phone:     req.Phone,
		Email:     req.Email,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Status:    req.Status,
	}, true
}
