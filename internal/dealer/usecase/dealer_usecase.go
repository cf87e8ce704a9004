package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	"github.com/portalaudio/cms/internal/dealer/domain"
	appValidation "github.com/portalaudio/cms/internal/validation"
)

// dealerUseCase implements DealerUseCase.
type dealerUseCase struct {
	dealerRepo DealerRepository
}

// NewDealerUseCase creates a new DealerUseCase.
func NewDealerUseCase(dealerRepo DealerRepository) DealerUseCase {
	return &dealerUseCase{
		dealerRepo: dealerRepo,
	}
}

// validateDealerFields validates the shared create/update field set.
func validateDealerFields(name, email string, latitude, longitude *float64, status domain.Status) error {
	err := validation.Errors{
		"name": validation.Validate(name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		"email": validation.Validate(email,
			appValidation.Email,
		),
		"latitude": validation.Validate(latitude,
			validation.Min(-90.0).Error("latitude must be between -90 and 90"),
			validation.Max(90.0).Error("latitude must be between -90 and 90"),
		),
		"longitude": validation.Validate(longitude,
			validation.Min(-180.0).Error("longitude must be between -180 and 180"),
			validation.Max(180.0).Error("longitude must be between -180 and 180"),
		),
		"status": validation.Validate(string(status),
			validation.In(string(domain.StatusActive), string(domain.StatusInactive)).
				Error("status must be active or inactive"),
		),
	}.Filter()
	return appValidation.WrapValidationError(err)
}

// resolveStatus defaults blank statuses to active.
func resolveStatus(raw string) domain.Status {
	status := domain.Status(strings.TrimSpace(raw))
	if status == "" {
		return domain.StatusActive
	}
	return status
}

// Create inserts a new dealer.
func (uc *dealerUseCase) Create(ctx context.Context, input CreateDealerInput) (*domain.Dealer, error) {
	status := resolveStatus(input.Status)
	if err := validateDealerFields(input.Name, input.Email, input.Latitude, input.Longitude, status); err != nil {
		return nil, err
	}

	dealer := &domain.Dealer{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      strings.TrimSpace(input.Name),
		Address:   input.Address,
		City:      input.City,
		Region:    input.Region,
		Phone:     input.Phone,
		Email:     input.Email,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Status:    status,
	}

	if err := uc.dealerRepo.Create(ctx, dealer); err != nil {
		return nil, err
	}

	return dealer, nil
}

// Update replaces the mutable fields of an existing dealer.
func (uc *dealerUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input UpdateDealerInput,
) (*domain.Dealer, error) {
	status := resolveStatus(input.Status)
	if err := validateDealerFields(input.Name, input.Email, input.Latitude, input.Longitude, status); err != nil {
		return nil, err
	}

	dealer, err := uc.dealerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dealer.Name = strings.TrimSpace(input.Name)
	dealer.Address = input.Address
	dealer.City = input.City
	dealer.Region = input.Region
	dealer.Phone = input.Phone
	dealer.Email = input.Email
	dealer.Latitude = input.Latitude
	dealer.Longitude = input.Longitude
	dealer.Status = status

	if err := uc.dealerRepo.Update(ctx, dealer); err != nil {
		return nil, err
	}

	return dealer, nil
}

// Get retrieves a dealer by ID.
func (uc *dealerUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Dealer, error) {
	return uc.dealerRepo.GetByID(ctx, id)
}

// List retrieves dealers matching the filter, ordered by city.
func (uc *dealerUseCase) List(
	ctx context.Context,
	filter domain.Filter,
	offset, limit int,
) ([]*domain.Dealer, error) {
	return uc.dealerRepo.List(ctx, filter, offset, limit)
}

// ListActive retrieves active dealers only, optionally narrowed by region.
// Inactive dealers never appear in public listings.
func (uc *dealerUseCase) ListActive(
	ctx context.Context,
	region string,
	offset, limit int,
) ([]*domain.Dealer, error) {
	filter := domain.Filter{
		Region: region,
		Status: domain.StatusActive,
	}
	return uc.dealerRepo.List(ctx, filter, offset, limit)
}

// Delete removes a dealer by ID.
func (uc *dealerUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.dealerRepo.Delete(ctx, id)
}
