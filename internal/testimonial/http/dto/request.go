// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"github.com/google/uuid"
	validation "github.com/jellydator/validation"
)

// TestimonialRequest represents the payload for creating or updating a testimonial.
type TestimonialRequest struct {
	CustomerName string `json:"customer_name"`
	Company      string `json:"company"`
	Content      string `json:"content"`
	Rating       int    `json:"rating"`
	ProductID    string `json:"product_id"`
	Featured     bool   `json:"featured"`
}

// Validate validates the testimonial request.
func (r TestimonialRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CustomerName,
			validation.Required.Error("customer_name is required"),
			validation.Length(1, 255).Error("customer_name must be between 1 and 255 characters"),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
		),
		validation.Field(&r.Rating,
			validation.Required.Error("rating is required"),
			validation.Min(1).Error("rating must be between 1 and 5"),
			validation.Max(5).Error("rating must be between 1 and 5"),
		),
		validation.Field(&r.ProductID,
			validation.When(r.ProductID != "", validation.By(validateUUIDString)),
		),
	)
}

func validateUUIDString(value interface{}) error {
	raw, _ := value.(string)
	if _, err := uuid.Parse(raw); err != nil {
		return validation.NewError("validation_uuid", "must be a valid UUID")
	}
	return nil
}
