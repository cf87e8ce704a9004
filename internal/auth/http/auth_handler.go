package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/portalaudio/cms/internal/auth/http/dto"
	authUseCase "github.com/portalaudio/cms/internal/auth/usecase"
	apperrors "github.com/portalaudio/cms/internal/errors"
	"github.com/portalaudio/cms/internal/httputil"
	customValidation "github.com/portalaudio/cms/internal/validation"
)

// AuthHandler handles HTTP requests for login, logout, and session introspection.
type AuthHandler struct {
	authUseCase  authUseCase.AuthUseCase
	cookieName   string
	cookieSecure bool
	logger       *slog.Logger
}

// NewAuthHandler creates a new auth handler with required dependencies.
func NewAuthHandler(
	authUseCase authUseCase.AuthUseCase,
	cookieName string,
	cookieSecure bool,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUseCase:  authUseCase,
		cookieName:   cookieName,
		cookieSecure: cookieSecure,
		logger:       logger,
	}
}

// LoginHandler verifies credentials and starts a session.
// POST /v1/auth/login - No authentication required (this is the authentication endpoint).
// Returns 200 OK with the session token and sets it as an HTTP-only cookie.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

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
	session, err := h.authUseCase.Login(c.Request.Context(), authUseCase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Set the session cookie. HTTP-only keeps it out of reach of scripts.
	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, session.Token, maxAge, "/", "", h.cookieSecure, true)

	c.JSON(http.StatusOK, dto.MapSessionToLoginResponse(session))
}

// LogoutHandler ends the session on the client side by expiring the cookie.
// POST /v1/auth/logout - No authentication required; logging out with no
// session is a no-op. Tokens are self-contained, so there is nothing to
// revoke server side.
// Returns 204 No Content.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, "", -1, "/", "", h.cookieSecure, true)

	c.Status(http.StatusNoContent)
}

// MeHandler returns the authenticated principal.
// GET /v1/auth/me - Requires authentication.
// Returns 200 OK with the user id and role carried by the session.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	principal, ok := GetPrincipal(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPrincipalToMeResponse(principal))
}
