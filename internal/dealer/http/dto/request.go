// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/portalaudio/cms/internal/validation"
)

// DealerRequest represents the payload for creating or updating a dealer.
type DealerRequest struct {
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

// Validate validates the dealer request.
func (r DealerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		validation.Field(&r.Email,
			customValidation.Email,
		),
		validation.Field(&r.Status,
			validation.In("", "active", "inactive").Error("status must be active or inactive"),
		),
	)
}
