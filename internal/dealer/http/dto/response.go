package dto

import (
	"time"

	"github.com/portalaudio/cms/internal/dealer/domain"
)

// DealerResponse represents a dealer in API responses.
type DealerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Region    string    `json:"region"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MapDealerToResponse converts a domain dealer to an API response.
func MapDealerToResponse(dealer *domain.Dealer) DealerResponse {
	return DealerResponse{
		ID:        dealer.ID.String(),
		Name:      dealer.Name,
		Address:   dealer.Address,
		City:      dealer.City,
		Region:    dealer.Region,
		Phone:     dealer.Phone,
		Email:     dealer.Email,
		Latitude:  dealer.Latitude,
		Longitude: dealer.Longitude,
		Status:    string(dealer.Status),
		CreatedAt: dealer.CreatedAt,
		UpdatedAt: dealer.UpdatedAt,
	}
}

// ListDealersResponse represents a paginated list of dealers in API responses.
type ListDealersResponse struct {
	Data []DealerResponse `json:"data"`
}

// MapDealersToListResponse converts a slice of domain dealers to a list API response.
func MapDealersToListResponse(dealers []*domain.Dealer) ListDealersResponse {
	dealerResponses := make([]DealerResponse, 0, len(dealers))
	for _, dealer := range dealers {
		dealerResponses = append(dealerResponses, MapDealerToResponse(dealer))
	}
	return ListDealersResponse{
		Data: dealerResponses,
	}
}
