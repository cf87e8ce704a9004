// Package usecase implements business logic orchestration for testimonial operations.
package usecase

import (
	"context"

	"github.com/google/uuid"

	catalogDomain "github.com/portalaudio/cms/internal/catalog/domain"
	"github.com/portalaudio/cms/internal/testimonial/domain"
)

// CreateTestimonialInput contains the input data for creating a testimonial.
type CreateTestimonialInput struct {
	CustomerName string     `json:"customer_name"`
	Company      string     `json:"company"`
	Content      string     `json:"content"`
	Rating       int        `json:"rating"`
	ProductID    *uuid.UUID `json:"product_id"`
	Featured     bool       `json:"featured"`
}

// UpdateTestimonialInput enumerates the mutable testimonial fields. Updates
// replace all of them; there is no partial merge.
type UpdateTestimonialInput struct {
	CustomerName string     `json:"customer_name"`
	Company      string     `json:"company"`
	Content      string     `json:"content"`
	Rating       int        `json:"rating"`
	ProductID    *uuid.UUID `json:"product_id"`
	Featured     bool       `json:"featured"`
}

// TestimonialUseCase defines the interface for testimonial business logic.
type TestimonialUseCase interface {
	Create(ctx context.Context, input CreateTestimonialInput) (*domain.Testimonial, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateTestimonialInput) (*domain.Testimonial, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Testimonial, error)
	List(ctx context.Context, filter domain.Filter, offset, limit int) ([]*domain.Testimonial, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TestimonialRepository interface defines testimonial repository operations.
type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *domain.Testimonial) error
	Update(ctx context.Context, testimonial *domain.Testimonial) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Testimonial, error)
	List(ctx context.Context, filter domain.Filter, offset, limit int) ([]*domain.Testimonial, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductFinder resolves catalog products referenced by testimonials.
type ProductFinder interface {
	GetByID(ctx context.Context, id uuid.UUID) (*catalogDomain.Product, error)
}
