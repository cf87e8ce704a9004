package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/portalaudio/cms/internal/errors"
)

// Product is a catalog item imported for sale.
// Specifications holds the free-form technical sheet (frequency response,
// sensitivity, dimensions) as a JSON document. Images holds hosted image URLs.
type Product struct {
	ID             uuid.UUID
	Name           string
	Slug           string
	CategoryID     *uuid.UUID
	Description    string
	Specifications map[string]any
	Price          *float64
	Brand          string
	Origin         string
	Availability   string
	Images         []string
	Featured       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Category carries the joined category summary on public reads; nil when
	// the product is uncategorized or the read did not join.
	Category *Category
}

// ProductFilter narrows public product listings.
type ProductFilter struct {
	CategorySlug string
	Featured     *bool
	Search       string
}

// Domain-specific errors for product operations.
var (
	// ErrProductNotFound indicates the requested product does not exist.
	ErrProductNotFound = errors.Wrap(errors.ErrNotFound, "product not found")

	// ErrProductSlugTaken indicates a product with the same slug already exists.
	ErrProductSlugTaken = errors.Wrap(errors.ErrConflict, "product slug already exists")
)
