// Package usecase implements the user business logic and orchestrates user domain operations.
package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	authDomain "github.com/portalaudio/cms/internal/auth/domain"
	authService "github.com/portalaudio/cms/internal/auth/service"
	apperrors "github.com/portalaudio/cms/internal/errors"
	"github.com/portalaudio/cms/internal/user/domain"
	appValidation "github.com/portalaudio/cms/internal/validation"
)

// CreateUserInput contains the input data for provisioning a user account.
// Name is optional; when blank it defaults to the local part of the email.
type CreateUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UseCase defines the interface for user business logic operations.
type UseCase interface {
	// Create provisions a new account with a hashed password and the admin role.
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)

	// List retrieves accounts ordered by creation time.
	List(ctx context.Context, offset, limit int) ([]*domain.User, error)

	// Delete removes an account. Deleting the account that issued the request
	// is rejected with ErrSelfDelete so a deployment always keeps at least the
	// acting administrator.
	Delete(ctx context.Context, actorID, userID uuid.UUID) error
}

// UserRepository interface defines user repository operations.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserUseCase handles user-related business logic.
type UserUseCase struct {
	userRepo        UserRepository
	passwordService authService.PasswordService
}

// NewUserUseCase creates a new UserUseCase.
func NewUserUseCase(
	userRepo UserRepository,
	passwordService authService.PasswordService,
) UseCase {
	return &UserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// validateCreateUserInput validates the provisioning input using jellydator/validation.
func (uc *UserUseCase) validateCreateUserInput(input CreateUserInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Name,
			validation.Length(0, 255).Error("name must be at most 255 characters"),
		),
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
			appValidation.PasswordStrength{
				MinLength:      8,
				RequireUpper:   true,
				RequireLower:   true,
				RequireNumber:  true,
				RequireSpecial: true,
			},
		),
	)
	return appValidation.WrapValidationError(err)
}

// Create provisions a new admin account.
func (uc *UserUseCase) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if err := uc.validateCreateUserInput(input); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(input.Email)

	// Default the display name to the local part of the email
	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = email[:strings.Index(email, "@")]
	}

	hashedPassword, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.Must(uuid.NewV7()),
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         authDomain.RoleAdmin,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// List retrieves accounts ordered by creation time.
func (uc *UserUseCase) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	return uc.userRepo.List(ctx, offset, limit)
}

// Delete removes an account, refusing to remove the acting administrator's own.
func (uc *UserUseCase) Delete(ctx context.Context, actorID, userID uuid.UUID) error {
	if actorID == uuid.Nil {
		return apperrors.ErrUnauthorized
	}
	if actorID == userID {
		return domain.ErrSelfDelete
	}

	return uc.userRepo.Delete(ctx, userID)
}
