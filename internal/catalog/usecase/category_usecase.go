package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	"github.com/portalaudio/cms/internal/catalog/domain"
	"github.com/portalaudio/cms/internal/slug"
	appValidation "github.com/portalaudio/cms/internal/validation"
)

// categoryUseCase implements CategoryUseCase.
type categoryUseCase struct {
	categoryRepo CategoryRepository
}

// NewCategoryUseCase creates a new CategoryUseCase.
func NewCategoryUseCase(categoryRepo CategoryRepository) CategoryUseCase {
	return &categoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// validateCategoryFields validates the shared create/update field set.
func validateCategoryFields(name, slugValue string) error {
	err := validation.Errors{
		"name": validation.Validate(name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		"slug": validation.Validate(slugValue,
			appValidation.Slug,
			validation.Length(0, 255).Error("slug must be at most 255 characters"),
		),
	}.Filter()
	return appValidation.WrapValidationError(err)
}

// resolveSlug returns the explicit slug when given, otherwise derives one from
// the name.
func resolveSlug(explicit, name string) string {
	if s := strings.TrimSpace(explicit); s != "" {
		return s
	}
	return slug.Make(name)
}

// Create inserts a new category, deriving the slug from the name when absent.
func (uc *categoryUseCase) Create(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	if err := validateCategoryFields(input.Name, input.Slug); err != nil {
		return nil, err
	}

	category := &domain.Category{
		ID:          uuid.Must(uuid.NewV7()),
		Name:        strings.TrimSpace(input.Name),
		Slug:        resolveSlug(input.Slug, input.Name),
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// Update replaces the mutable fields of an existing category.
func (uc *categoryUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input UpdateCategoryInput,
) (*domain.Category, error) {
	if err := validateCategoryFields(input.Name, input.Slug); err != nil {
		return nil, err
	}

	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = strings.TrimSpace(input.Name)
	category.Slug = resolveSlug(input.Slug, input.Name)
	category.Description = input.Description
	category.ImageURL = input.ImageURL

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// Get retrieves a category by ID.
func (uc *categoryUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	return uc.categoryRepo.GetByID(ctx, id)
}

// GetBySlug retrieves a category by slug.
func (uc *categoryUseCase) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return uc.categoryRepo.GetBySlug(ctx, slug)
}

// List retrieves categories ordered by name.
func (uc *categoryUseCase) List(ctx context.Context, offset, limit int) ([]*domain.Category, error) {
	return uc.categoryRepo.List(ctx, offset, limit)
}

// Delete removes a category by ID.
func (uc *categoryUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.categoryRepo.Delete(ctx, id)
}
