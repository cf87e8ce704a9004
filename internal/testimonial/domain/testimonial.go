// Package domain defines the core testimonial domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/portalaudio/cms/internal/errors"
)

// Testimonial represents a customer quote shown on the marketing site.
type Testimonial struct {
	ID           uuid.UUID
	CustomerName string
	Company      string
	Content      string
	Rating       int
	ProductID    *uuid.UUID
	Featured     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Filter narrows testimonial listings.
type Filter struct {
	Featured *bool
}

// Domain-specific errors for testimonial operations.
var (
	// ErrTestimonialNotFound indicates the requested testimonial does not exist.
	ErrTestimonialNotFound = errors.Wrap(errors.ErrNotFound, "testimonial not found")
)
