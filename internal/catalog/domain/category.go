// Package domain defines the core catalog domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/portalaudio/cms/internal/errors"
)

// Category groups products for navigation on the marketing site.
type Category struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	Description string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Domain-specific errors for category operations.
var (
	// ErrCategoryNotFound indicates the requested category does not exist.
	ErrCategoryNotFound = errors.Wrap(errors.ErrNotFound, "category not found")

	// ErrCategorySlugTaken indicates a category with the same slug already exists.
	ErrCategorySlugTaken = errors.Wrap(errors.ErrConflict, "category slug already exists")
)
