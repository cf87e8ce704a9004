// Package usecase implements business logic orchestration for blog operations.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/portalaudio/cms/internal/blog/domain"
)

// CreatePostInput contains the input data for creating a blog post.
// Slug is optional; when blank it is derived from the title.
type CreatePostInput struct {
	Title         string `json:"title"`
	Slug          string `json:"slug"`
	Content       string `json:"content"`
	Excerpt       string `json:"excerpt"`
	FeaturedImage string `json:"featured_image"`
	Author        string `json:"author"`
	InstagramURL  string `json:"instagram_url"`
	Published     bool   `json:"published"`
}

// UpdatePostInput enumerates the mutable blog post fields. Updates replace
// all of them; there is no partial merge.
type UpdatePostInput struct {
	Title         string `json:"title"`
	Slug          string `json:"slug"`
	Content       string `json:"content"`
	Excerpt       string `json:"excerpt"`
	FeaturedImage string `json:"featured_image"`
	Author        string `json:"author"`
	InstagramURL  string `json:"instagram_url"`
	Published     bool   `json:"published"`
}

// PostUseCase defines the interface for blog post business logic.
type PostUseCase interface {
	Create(ctx context.Context, input CreatePostInput) (*domain.Post, error)
	Update(ctx context.Context, id uuid.UUID, input UpdatePostInput) (*domain.Post, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*domain.Post, error)
	List(ctx context.Context, filter domain.Filter, offset, limit int) ([]*domain.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PostRepository interface defines blog post repository operations.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	Update(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Post, error)
	List(ctx context.Context, filter domain.Filter, offset, limit int) ([]*domain.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
