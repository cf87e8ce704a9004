package dto

import (
	"time"

	"github.com/portalaudio/cms/internal/inquiry/domain"
)

// InquiryResponse represents an inquiry in API responses.
type InquiryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	ProductID *string   `json:"product_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MapInquiryToResponse converts a domain inquiry to an API response.
func MapInquiryToResponse(inquiry *domain.Inquiry) InquiryResponse {
	response := InquiryResponse{
		ID:        inquiry.ID.String(),
		Name:      inquiry.Name,
		Email:     inquiry.Email,
		Phone:     inquiry.Phone,
		Message:   inquiry.Message,
		Status:    string(inquiry.Status),
		CreatedAt: inquiry.CreatedAt,
		UpdatedAt: inquiry.UpdatedAt,
	}
	if inquiry.ProductID != nil {
		productID := inquiry.ProductID.String()
		response.ProductID = &productID
	}
	return response
}

// ListInquiriesResponse represents a paginated list of inquiries in API responses.
type ListInquiriesResponse struct {
	Data []InquiryResponse `json:"data"`
}

// MapInquiriesToListResponse converts a slice of domain inquiries to a list API response.
func MapInquiriesToListResponse(inquiries []*domain.Inquiry) ListInquiriesResponse {
	inquiryResponses := make([]InquiryResponse, 0, len(inquiries))
	for _, inquiry := range inquiries {
		inquiryResponses = append(inquiryResponses, MapInquiryToResponse(inquiry))
	}
	return ListInquiriesResponse{
		Data: inquiryResponses,
	}
}
