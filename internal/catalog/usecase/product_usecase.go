package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	"github.com/portalaudio/cms/internal/catalog/domain"
	appValidation "github.com/portalaudio/cms/internal/validation"
)

// productUseCase implements ProductUseCase.
type productUseCase struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
}

// NewProductUseCase creates a new ProductUseCase.
func NewProductUseCase(productRepo ProductRepository, categoryRepo CategoryRepository) ProductUseCase {
	return &productUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// validateProductFields validates the shared create/update field set.
func validateProductFields(name, slugValue, availability string) error {
	err := validation.Errors{
		"name": validation.Validate(name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		"slug": validation.Validate(slugValue,
			appValidation.Slug,
			validation.Length(0, 255).Error("slug must be at most 255 characters"),
		),
		"availability": validation.Validate(availability,
			validation.Length(0, 100).Error("availability must be at most 100 characters"),
		),
	}.Filter()
	return appValidation.WrapValidationError(err)
}

// resolveCategory verifies the referenced category exists when one is given.
func (uc *productUseCase) resolveCategory(ctx context.Context, categoryID *uuid.UUID) error {
	if categoryID == nil {
		return nil
	}
	_, err := uc.categoryRepo.GetByID(ctx, *categoryID)
	return err
}

// Create inserts a new product, deriving the slug from the name when absent.
func (uc *productUseCase) Create(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	if err := validateProductFields(input.Name, input.Slug, input.Availability); err != nil {
		return nil, err
	}

	if err := uc.resolveCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	product := &domain.Product{
		ID:             uuid.Must(uuid.NewV7()),
		Name:           strings.TrimSpace(input.Name),
		Slug:           resolveSlug(input.Slug, input.Name),
		CategoryID:     input.CategoryID,
		Description:    input.Description,
		Specifications: input.Specifications,
		Price:          input.Price,
		Brand:          input.Brand,
		Origin:         input.Origin,
		Availability:   input.Availability,
		Images:         input.Images,
		Featured:       input.Featured,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// Update replaces the mutable fields of an existing product.
func (uc *productUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input UpdateProductInput,
) (*domain.Product, error) {
	if err := validateProductFields(input.Name, input.Slug, input.Availability); err != nil {
		return nil, err
	}

	if err := uc.resolveCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = strings.TrimSpace(input.Name)
	product.Slug = resolveSlug(input.Slug, input.Name)
	product.CategoryID = input.CategoryID
	product.Description = input.Description
	product.Specifications = input.Specifications
	product.Price = input.Price
	product.Brand = input.Brand
	product.Origin = input.Origin
	product.Availability = input.Availability
	product.Images = input.Images
	product.Featured = input.Featured

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// Get retrieves a product by ID.
func (uc *productUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

// GetBySlug retrieves a product by slug with its category summary.
func (uc *productUseCase) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return uc.productRepo.GetBySlug(ctx, slug)
}

// List retrieves products matching the filter, newest first.
func (uc *productUseCase) List(
	ctx context.Context,
	filter domain.ProductFilter,
	offset, limit int,
) ([]*domain.Product, error) {
	return uc.productRepo.List(ctx, filter, offset, limit)
}

// Delete removes a product by ID.
func (uc *productUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.productRepo.Delete(ctx, id)
}
