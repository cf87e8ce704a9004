// Package usecase implements business logic orchestration for inquiry operations.
package usecase

import (
	"context"

	"github.com/google/uuid"

	catalogDomain "github.com/portalaudio/cms/internal/catalog/domain"
	"github.com/portalaudio/cms/internal/inquiry/domain"
)

// SubmitInquiryInput contains the input data for a public contact-form
// submission. The initial status is always "new" and is not client-settable.
type SubmitInquiryInput struct {
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Message   string     `json:"message"`
	ProductID *uuid.UUID `json:"product_id"`
}

// InquiryUseCase defines the interface for inquiry business logic.
type InquiryUseCase interface {
	Submit(ctx context.Context, input SubmitInquiryInput) (*domain.Inquiry, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) (*domain.Inquiry, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Inquiry, error)
	List(ctx context.Context, filter domain.Filter, offset, limit int) ([]*domain.Inquiry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// InquiryRepository interface defines inquiry repository operations.
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *domain.Inquiry) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Inquiry, error)
	List(ctx context.Context, filter domain.Filter, offset, limit int) ([]*domain.Inquiry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductFinder resolves catalog products referenced by inquiries.
type ProductFinder interface {
	GetByID(ctx context.Context, id uuid.UUID) (*catalogDomain.Product, error)
}
