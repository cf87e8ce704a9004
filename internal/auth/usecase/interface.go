// Package usecase implements business logic orchestration for authentication operations.
package usecase

import (
	"context"

	"github.com/portalaudio/cms/internal/auth/domain"
	userDomain "github.com/portalaudio/cms/internal/user/domain"
)

// LoginInput contains the credentials presented on login.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthUseCase defines the interface for authentication business logic.
type AuthUseCase interface {
	// Login verifies the credentials and mints a signed session on success.
	// Unknown email and wrong password both return ErrInvalidCredentials.
	Login(ctx context.Context, input LoginInput) (*domain.Session, error)

	// Authenticate verifies a session token and returns its principal.
	Authenticate(ctx context.Context, token string) (*domain.Principal, error)
}

// UserRepository defines the user lookup needed for credential verification.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*userDomain.User, error)
}
