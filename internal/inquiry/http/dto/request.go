// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	customValidation "github.com/portalaudio/cms/internal/validation"
)

// SubmitInquiryRequest represents the public contact-form payload.
type SubmitInquiryRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
	ProductID string `json:"product_id"`
}

// Validate validates the inquiry submission request.
func (r SubmitInquiryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			customValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			customValidation.Email,
		),
		validation.Field(&r.Message,
			validation.Required.Error("message is required"),
			customValidation.NotBlank,
		),
		validation.Field(&r.ProductID,
			validation.When(r.ProductID != "", validation.By(validateUUIDString)),
		),
	)
}

// UpdateInquiryStatusRequest represents the admin status transition payload.
// Status is the only mutable inquiry field.
type UpdateInquiryStatusRequest struct {
	Status string `json:"status"`
}

// Validate validates the status update request.
func (r UpdateInquiryStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status,
			validation.Required.Error("status is required"),
			validation.In("new", "in_progress", "resolved").
				Error("status must be new, in_progress or resolved"),
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
