// Package http provides HTTP handlers for administrative account management.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/portalaudio/cms/internal/auth/http"
	apperrors "github.com/portalaudio/cms/internal/errors"
	"github.com/portalaudio/cms/internal/httputil"
	"github.com/portalaudio/cms/internal/user/http/dto"
	userUseCase "github.com/portalaudio/cms/internal/user/usecase"
	customValidation "github.com/portalaudio/cms/internal/validation"
)

// UserHandler handles HTTP requests for account management operations.
type UserHandler struct {
	userUseCase userUseCase.UseCase
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler with required dependencies.
func NewUserHandler(
	userUseCase userUseCase.UseCase,
	logger *slog.Logger,
) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// CreateUserHandler provisions a new admin account.
// POST /v1/admin/users - Requires admin role.
// Returns 201 Created with the account details (password hash excluded).
func (h *UserHandler) CreateUserHandler(c *gin.Context) {
	var req dto.CreateUserRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Call use case
	user, err := h.userUseCase.Create(c.Request.Context(), userUseCase.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapUserToResponse(user))
}

// ListUsersHandler lists accounts with pagination.
// GET /v1/admin/users?offset=0&limit=50 - Requires admin role.
// Returns 200 OK with the accounts ordered by creation time.
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	offset, limit := httputil.ParsePagination(c)

	users, err := h.userUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUsersToListResponse(users))
}

// DeleteUserHandler removes an account.
// DELETE /v1/admin/users/:id - Requires admin role.
// The authenticated account cannot delete itself.
// Returns 204 No Content on success.
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid user id format: must be a valid UUID"),
			h.logger)
		return
	}

	principal, ok := authHTTP.GetPrincipal(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	if err := h.userUseCase.Delete(c.Request.Context(), principal.UserID, userID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
