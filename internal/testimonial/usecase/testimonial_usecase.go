package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	"github.com/portalaudio/cms/internal/testimonial/domain"
	appValidation "github.com/portalaudio/cms/internal/validation"
)

// testimonialUseCase implements TestimonialUseCase.
type testimonialUseCase struct {
	testimonialRepo TestimonialRepository
	productFinder   ProductFinder
}

// NewTestimonialUseCase creates a new TestimonialUseCase.
func NewTestimonialUseCase(testimonialRepo TestimonialRepository, productFinder ProductFinder) TestimonialUseCase {
	return &testimonialUseCase{
		testimonialRepo: testimonialRepo,
		productFinder:   productFinder,
	}
}

// validateTestimonialFields validates the shared create/update field set.
func validateTestimonialFields(customerName, content string, rating int) error {
	err := validation.Errors{
		"customer_name": validation.Validate(customerName,
			validation.Required.Error("customer_name is required"),
			validation.Length(1, 255).Error("customer_name must be between 1 and 255 characters"),
		),
		"content": validation.Validate(content,
			validation.Required.Error("content is required"),
		),
		"rating": validation.Validate(rating,
			validation.Required.Error("rating is required"),
			validation.Min(1).Error("rating must be between 1 and 5"),
			validation.Max(5).Error("rating must be between 1 and 5"),
		),
	}.Filter()
	return appValidation.WrapValidationError(err)
}

// resolveProduct verifies the referenced product exists when one is given.
func (uc *testimonialUseCase) resolveProduct(ctx context.Context, productID *uuid.UUID) error {
	if productID == nil {
		return nil
	}
	_, err := uc.productFinder.GetByID(ctx, *productID)
	return err
}

// Create inserts a new testimonial.
func (uc *testimonialUseCase) Create(ctx context.Context, input CreateTestimonialInput) (*domain.Testimonial, error) {
	if err := validateTestimonialFields(input.CustomerName, input.Content, input.Rating); err != nil {
		return nil, err
	}
	if err := uc.resolveProduct(ctx, input.ProductID); err != nil {
		return nil, err
	}

	testimonial := &domain.Testimonial{
		ID:           uuid.Must(uuid.NewV7()),
		CustomerName: strings.TrimSpace(input.CustomerName),
		Company:      input.Company,
		Content:      input.Content,
		Rating:       input.Rating,
		ProductID:    input.ProductID,
		Featured:     input.Featured,
	}

	if err := uc.testimonialRepo.Create(ctx, testimonial); err != nil {
		return nil, err
	}

	return testimonial, nil
}

// Update replaces the mutable fields of an existing testimonial.
func (uc *testimonialUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input UpdateTestimonialInput,
) (*domain.Testimonial, error) {
	if err := validateTestimonialFields(input.CustomerName, input.Content, input.Rating); err != nil {
		return nil, err
	}
	if err := uc.resolveProduct(ctx, input.ProductID); err != nil {
		return nil, err
	}

	testimonial, err := uc.testimonialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	testimonial.CustomerName = strings.TrimSpace(input.CustomerName)
	testimonial.Company = input.Company
	testimonial.Content = input.Content
	testimonial.Rating = input.Rating
	testimonial.ProductID = input.ProductID
	testimonial.Featured = input.Featured

	if err := uc.testimonialRepo.Update(ctx, testimonial); err != nil {
		return nil, err
	}

	return testimonial, nil
}

// Get retrieves a testimonial by ID.
func (uc *testimonialUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Testimonial, error) {
	return uc.testimonialRepo.GetByID(ctx, id)
}

// List retrieves testimonials matching the filter, newest first.
func (uc *testimonialUseCase) List(
	ctx context.Context,
	filter domain.Filter,
	offset, limit int,
) ([]*domain.Testimonial, error) {
	return uc.testimonialRepo.List(ctx, filter, offset, limit)
}

// Delete removes a testimonial by ID.
func (uc *testimonialUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.testimonialRepo.Delete(ctx, id)
}
