// Package usecase implements business logic orchestration for catalog operations.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/portalaudio/cms/internal/catalog/domain"
)

// CreateCategoryInput contains the input data for creating a category.
// Slug is optional; when blank it is derived from the name.
type CreateCategoryInput struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// UpdateCategoryInput enumerates the mutable category fields. Updates replace
// all of them; there is no partial merge.
type UpdateCategoryInput struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// CategoryUseCase defines the interface for category business logic.
type CategoryUseCase interface {
	Create(ctx context.Context, input CreateCategoryInput) (*domain.Category, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateCategoryInput) (*domain.Category, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreateProductInput contains the input data for creating a product.
// Slug is optional; when blank it is derived from the name.
type CreateProductInput struct {
	Name           string         `json:"name"`
	Slug           string         `json:"slug"`
	CategoryID     *uuid.UUID     `json:"category_id"`
	Description    string         `json:"description"`
	Specifications map[string]any `json:"specifications"`
	Price          *float64       `json:"price"`
	Brand          string         `json:"brand"`
	Origin         string         `json:"origin"`
	Availability   string         `json:"availability"`
	Images         []string       `json:"images"`
	Featured       bool           `json:"featured"`
}

// UpdateProductInput enumerates the mutable product fields. Updates replace
// all of them; there is no partial merge.
type UpdateProductInput struct {
	Name           string         `json:"name"`
	Slug           string         `json:"slug"`
	CategoryID     *uuid.UUID     `json:"category_id"`
	Description    string         `json:"description"`
	Specifications map[string]any `json:"specifications"`
	Price          *float64       `json:"price"`
	Brand          string         `json:"brand"`
	Origin         string         `json:"origin"`
	Availability   string         `json:"availability"`
	Images         []string       `json:"images"`
	Featured       bool           `json:"featured"`
}

// ProductUseCase defines the interface for product business logic.
type ProductUseCase interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*domain.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	List(ctx context.Context, filter domain.ProductFilter, offset, limit int) ([]*domain.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryRepository interface defines category repository operations.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	Update(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductRepository interface defines product repository operations.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	List(ctx context.Context, filter domain.ProductFilter, offset, limit int) ([]*domain.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
