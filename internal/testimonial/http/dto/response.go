package dto

import (
	"time"

	"github.com/portalaudio/cms/internal/testimonial/domain"
)

// TestimonialResponse represents a testimonial in API responses.
type TestimonialResponse struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	Company      string    `json:"company"`
	Content      string    `json:"content"`
	Rating       int       `json:"rating"`
	ProductID    *string   `json:"product_id"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MapTestimonialToResponse converts a domain testimonial to an API response.
func MapTestimonialToResponse(testimonial *domain.Testimonial) TestimonialResponse {
	response := TestimonialResponse{
		ID:           testimonial.ID.String(),
		CustomerName: testimonial.CustomerName,
		Company:      testimonial.Company,
		Content:      testimonial.Content,
		Rating:       testimonial.Rating,
		Featured:     testimonial.Featured,
		CreatedAt:    testimonial.CreatedAt,
		UpdatedAt:    testimonial.UpdatedAt,
	}
	if testimonial.ProductID != nil {
		productID := testimonial.ProductID.String()
		response.ProductID = &productID
	}
	return response
}

// ListTestimonialsResponse represents a paginated list of testimonials in API responses.
type ListTestimonialsResponse struct {
	Data []TestimonialResponse `json:"data"`
}

// MapTestimonialsToListResponse converts a slice of domain testimonials to a list API response.
func MapTestimonialsToListResponse(testimonials []*domain.Testimonial) ListTestimonialsResponse {
	testimonialResponses := make([]TestimonialResponse, 0, len(testimonials))
	for _, testimonial := range testimonials {
		testimonialResponses = append(testimonialResponses, MapTestimonialToResponse(testimonial))
	}
	return ListTestimonialsResponse{
		Data: testimonialResponses,
	}
}
