// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	customValidation "github.com/portalaudio/cms/internal/validation"
)

// validateUUIDString validates that a string parses as a UUID.
func validateUUIDString(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_uuid", "must be a string")
	}
	if _, err := uuid.Parse(s); err != nil {
		return validation.NewError("validation_uuid", "must be a valid UUID")
	}
	return nil
}

// CategoryRequest contains the parameters for creating or updating a category.
// The same explicit field set serves both operations; updates replace every
// mutable field.
type CategoryRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// Validate checks if the category request is valid.
func (r *CategoryRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Slug,
			customValidation.Slug,
			validation.Length(0, 255),
		),
	)
}

// ProductRequest contains the parameters for creating or updating a product.
// The same explicit field set serves both operations; updates replace every
// mutable field.
type ProductRequest struct {
	Name           string         `json:"name"`
	Slug           string         `json:"slug"`
	CategoryID     string         `json:"category_id"`
	Description    string         `json:"description"`
	Specifications map[string]any `json:"specifications"`
	Price          *float64       `json:"price"`
	Brand          string         `json:"brand"`
	Origin         string         `json:"origin"`
	Availability   string         `json:"availability"`
	Images         []string       `json:"images"`
	Featured       bool           `json:"featured"`
}

// Validate checks if the product request is valid.
func (r *ProductRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Slug,
			customValidation.Slug,
			validation.Length(0, 255),
		),
		validation.Field(&r.CategoryID,
			validation.When(r.CategoryID != "", validation.By(validateUUIDString)),
		),
		validation.Field(&r.Price,
			validation.Min(0.0),
		),
	)
}
