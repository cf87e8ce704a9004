package usecase

import (
	"context"
	"errors"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/portalaudio/cms/internal/auth/domain"
	authService "github.com/portalaudio/cms/internal/auth/service"
	userDomain "github.com/portalaudio/cms/internal/user/domain"
	appValidation "github.com/portalaudio/cms/internal/validation"
)

// authUseCase implements AuthUseCase for credential verification and session handling.
type authUseCase struct {
	userRepo        UserRepository
	passwordService authService.PasswordService
	sessionService  authService.SessionService
}

// NewAuthUseCase creates a new AuthUseCase.
func NewAuthUseCase(
	userRepo UserRepository,
	passwordService authService.PasswordService,
	sessionService authService.SessionService,
) AuthUseCase {
	return &authUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		sessionService:  sessionService,
	}
}

// validateLoginInput validates the login input using jellydator/validation.
func (a *authUseCase) validateLoginInput(input LoginInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// Login verifies the credentials and mints a signed session on success.
//
// Security Notes:
//   - Returns ErrInvalidCredentials for both unknown emails and wrong passwords
//     to prevent account enumeration attacks
//   - The session embeds the user's role as a snapshot; later role changes do
//     not affect sessions already minted
func (a *authUseCase) Login(ctx context.Context, input LoginInput) (*domain.Session, error) {
	if err := a.validateLoginInput(input); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(input.Email)

	user, err := a.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// If user not found, return generic error to prevent enumeration
		if errors.Is(err, userDomain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !a.passwordService.ComparePassword(input.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := a.sessionService.Mint(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &domain.Session{
		Token:     token,
		UserID:    user.ID,
		Role:      user.Role,
		ExpiresAt: expiresAt,
	}, nil
}

// Authenticate verifies a session token and returns the principal it carries.
// No database lookup is performed; the token is self-contained.
func (a *authUseCase) Authenticate(_ context.Context, token string) (*domain.Principal, error) {
	return a.sessionService.Verify(token)
}
