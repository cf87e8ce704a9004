// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	authDomain "github.com/portalaudio/cms/internal/auth/domain"
)

// LoginResponse contains the result of a successful login.
// The token is also set as an HTTP-only cookie; it is included in the body for
// clients that prefer the Authorization header.
type LoginResponse struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// MapSessionToLoginResponse converts a domain session to an API response.
func MapSessionToLoginResponse(session *authDomain.Session) LoginResponse {
	return LoginResponse{
		Token:     session.Token,
		UserID:    session.UserID.String(),
		Role:      string(session.Role),
		ExpiresAt: session.ExpiresAt,
	}
}

// MeResponse describes the authenticated principal in API responses.
type MeResponse struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// MapPrincipalToMeResponse converts a domain principal to an API response.
func MapPrincipalToMeResponse(principal *authDomain.Principal) MeResponse {
	return MeResponse{
		UserID: principal.UserID.String(),
		Role:   string(principal.Role),
	}
}
