// Package domain defines the core blog domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/portalaudio/cms/internal/errors"
)

// Post represents a blog article on the marketing site.
type Post struct {
	ID            uuid.UUID
	Title         string
	Slug          string
	Content       string
	Excerpt       string
	FeaturedImage string
	Author        string
	InstagramURL  string
	Published     bool
	PublishedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Filter narrows blog post listings. PublishedOnly listings are ordered by
// publication date, everything else by creation date.
type Filter struct {
	PublishedOnly bool
}

// Domain-specific errors for blog operations.
var (
	// ErrPostNotFound indicates the requested blog post does not exist.
	ErrPostNotFound = errors.Wrap(errors.ErrNotFound, "blog post not found")

	// ErrPostSlugTaken indicates a blog post with the same slug already exists.
	ErrPostSlugTaken = errors.Wrap(errors.ErrConflict, "blog post slug already exists")
)
