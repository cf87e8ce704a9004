package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	"github.com/portalaudio/cms/internal/database"
	"github.com/portalaudio/cms/internal/inquiry/domain"
	appValidation "github.com/portalaudio/cms/internal/validation"
)

// inquiryUseCase implements InquiryUseCase.
type inquiryUseCase struct {
	txManager     database.TxManager
	inquiryRepo   InquiryRepository
	productFinder ProductFinder
}

// NewInquiryUseCase creates a new InquiryUseCase.
func NewInquiryUseCase(
	txManager database.TxManager,
	inquiryRepo InquiryRepository,
	productFinder ProductFinder,
) InquiryUseCase {
	return &inquiryUseCase{
		txManager:     txManager,
		inquiryRepo:   inquiryRepo,
		productFinder: productFinder,
	}
}

func validateSubmitInquiryInput(input SubmitInquiryInput) error {
	err := validation.Errors{
		"name": validation.Validate(input.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		"email": validation.Validate(input.Email,
			validation.Required.Error("email is required"),
			appValidation.Email,
		),
		"message": validation.Validate(input.Message,
			validation.Required.Error("message is required"),
			appValidation.NotBlank,
		),
	}.Filter()
	return appValidation.WrapValidationError(err)
}

// Submit persists a public contact-form submission with status "new".
// This is the only unauthenticated write in the system.
func (uc *inquiryUseCase) Submit(ctx context.Context, input SubmitInquiryInput) (*domain.Inquiry, error) {
	if err := validateSubmitInquiryInput(input); err != nil {
		return nil, err
	}
	if input.ProductID != nil {
		if _, err := uc.productFinder.GetByID(ctx, *input.ProductID); err != nil {
			return nil, err
		}
	}

	inquiry := &domain.Inquiry{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.TrimSpace(input.Email),
		Phone:     input.Phone,
		Message:   input.Message,
		ProductID: input.ProductID,
		Status:    domain.StatusNew,
	}

	if err := uc.inquiryRepo.Create(ctx, inquiry); err != nil {
		return nil, err
	}

	return inquiry, nil
}

// UpdateStatus changes the handling state of an inquiry. Status is the only
// field admins may mutate.
func (uc *inquiryUseCase) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	status domain.Status,
) (*domain.Inquiry, error) {
	err := validation.Errors{
		"status": validation.Validate(string(status),
			validation.Required.Error("status is required"),
			validation.In(
				string(domain.StatusNew),
				string(domain.StatusInProgress),
				string(domain.StatusResolved),
			).Error("status must be new, in_progress or resolved"),
		),
	}.Filter()
	if err != nil {
		return nil, appValidation.WrapValidationError(err)
	}

	var inquiry *domain.Inquiry
	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.inquiryRepo.UpdateStatus(ctx, id, status); err != nil {
			return err
		}
		var getErr error
		inquiry, getErr = uc.inquiryRepo.GetByID(ctx, id)
		return getErr
	})
	if err != nil {
		return nil, err
	}

	return inquiry, nil
}

// Get retrieves an inquiry by ID.
func (uc *inquiryUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Inquiry, error) {
	return uc.inquiryRepo.GetByID(ctx, id)
}

// List retrieves inquiries matching the filter, newest first.
func (uc *inquiryUseCase) List(
	ctx context.Context,
	filter domain.Filter,
	offset, limit int,
) ([]*domain.Inquiry, error) {
	return uc.inquiryRepo.List(ctx, filter, offset, limit)
}

// Delete removes an inquiry by ID.
func (uc *inquiryUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.inquiryRepo.Delete(ctx, id)
}
