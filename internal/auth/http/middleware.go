package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/portalaudio/cms/internal/auth/domain"
	authUseCase "github.com/portalaudio/cms/internal/auth/usecase"
	apperrors "github.com/portalaudio/cms/internal/errors"
	"github.com/portalaudio/cms/internal/httputil"
)

// AuthenticationMiddleware provides authentication via a session cookie or a
// Bearer token in the Authorization header.
//
// The middleware:
// 1. Extracts the session token from the named cookie, falling back to the
//    Authorization header ("Bearer <token>", case-insensitive)
// 2. Verifies the token using authUseCase.Authenticate()
// 3. Stores the authenticated principal in the request context
// 4. Allows downstream handlers to access the principal via GetPrincipal()
//
// Error handling:
//   - Missing cookie and Authorization header → 401 Unauthorized
//   - Malformed Authorization header → 401 Unauthorized
//   - Expired/tampered/malformed session token → 401 Unauthorized
//
// Usage:
//
//	router.Use(AuthenticationMiddleware(authUseCase, "cms_session", logger))
//	router.GET("/protected", func(c *gin.Context) {
//	    principal, ok := GetPrincipal(c.Request.Context())
//	    if !ok {
//	        // Should never happen if middleware is working correctly
//	        c.JSON(401, gin.H{"error": "unauthorized"})
//	        return
//	    }
//	    // Use principal for authorization checks
//	})
func AuthenticationMiddleware(
	authUseCase authUseCase.AuthUseCase,
	cookieName string,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractSessionToken(c, cookieName)
		if err != nil {
			logger.Debug("authentication failed",
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		principal, err := authUseCase.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.Debug("authentication failed",
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		// Store the principal in the request context for downstream handlers
		ctx := WithPrincipal(c.Request.Context(), principal)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// extractSessionToken pulls the session token from the cookie or, failing
// that, from the Authorization header.
func extractSessionToken(c *gin.Context, cookieName string) (string, error) {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie, nil
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", apperrors.Wrap(apperrors.ErrUnauthorized, "missing session")
	}

	// Parse Bearer token (case-insensitive)
	const bearerPrefix = "bearer "
	if len(authHeader) < len(bearerPrefix) ||
		!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
		return "", apperrors.Wrap(apperrors.ErrUnauthorized, "malformed authorization header")
	}

	token := authHeader[len(bearerPrefix):]
	if token == "" {
		return "", apperrors.Wrap(apperrors.ErrUnauthorized, "empty bearer token")
	}

	return token, nil
}

// RequireRole authorizes the authenticated principal against a required role.
//
// Must run after AuthenticationMiddleware. A request that reaches this
// middleware without a principal in context is rejected with 401; a principal
// whose role does not match is rejected with 403. The distinction matters:
// 401 means "no valid session", 403 means "valid session, insufficient role".
func RequireRole(role authDomain.Role, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c.Request.Context())
		if !ok {
			logger.Debug("authorization failed: no principal in context")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		if principal.Role != role {
			logger.Debug("authorization failed: insufficient role",
				slog.String("user_id", principal.UserID.String()),
				slog.String("role", string(principal.Role)),
				slog.String("required_role", string(role)))
			httputil.HandleErrorGin(c, apperrors.ErrForbidden, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}
