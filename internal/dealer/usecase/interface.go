// Package usecase implements business logic orchestration for dealer operations.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/portalaudio/cms/internal/dealer/domain"
)

// CreateDealerInput contains the input data for creating a dealer.
// Status defaults to "active" when blank.
type CreateDealerInput struct {
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	City      string   `json:"city"`
	Region    string   `json:"region"`
	Phone     string   `json:"phone"`
	Email     string   `json:"email"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Status    string   `json:"status"`
}

// UpdateDealerInput enumerates the mutable dealer fields. Updates replace
// all of them; there is no partial merge.
type UpdateDealerInput struct {
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	City      string   `json:"city"`
	Region    string   `json:"region"`
	Phone     string   `json:"phone"`
	Email     string   `json:"email"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Status    string   `json:"status"`
}

// DealerUseCase defines the interface for dealer business logic.
type DealerUseCase interface {
	Create(ctx context.Context, input CreateDealerInput) (*domain.Dealer, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateDealerInput) (*domain.Dealer, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Dealer, error)
	List(ctx context.Context, filter domain.Filter, offset, limit int) ([]*domain.Dealer, error)
	ListActive(ctx context.Context, region string, offset, limit int) ([]*domain.Dealer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DealerRepository interface defines dealer repository operations.
type DealerRepository interface {
	Create(ctx context.Context, dealer *domain.Dealer) error
	Update(ctx context.Context, dealer *domain.Dealer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Dealer, error)
	List(ctx context.Context, filter domain.Filter, offset, limit int) ([]*domain.Dealer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
