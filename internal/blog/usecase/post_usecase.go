package usecase

import (
	"context"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	"github.com/portalaudio/cms/internal/blog/domain"
	"github.com/portalaudio/cms/internal/slug"
	appValidation "github.com/portalaudio/cms/internal/validation"
)

// postUseCase implements PostUseCase.
type postUseCase struct {
	postRepo PostRepository
}

// NewPostUseCase creates a new PostUseCase.
func NewPostUseCase(postRepo PostRepository) PostUseCase {
	return &postUseCase{
		postRepo: postRepo,
	}
}

// validatePostFields validates the shared create/update field set.
func validatePostFields(title, slugValue, content string) error {
	err := validation.Errors{
		"title": validation.Validate(title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255).Error("title must be between 1 and 255 characters"),
		),
		"slug": validation.Validate(slugValue,
			appValidation.Slug,
			validation.Length(0, 255).Error("slug must be at most 255 characters"),
		),
		"content": validation.Validate(content,
			validation.Required.Error("content is required"),
		),
	}.Filter()
	return appValidation.WrapValidationError(err)
}

// resolveSlug returns the explicit slug when given, otherwise derives one from
// the title.
func resolveSlug(explicit, title string) string {
	if s := strings.TrimSpace(explicit); s != "" {
		return s
	}
	return slug.Make(title)
}

// Create inserts a new blog post, stamping the publication date when the post
// is created already published.
func (uc *postUseCase) Create(ctx context.Context, input CreatePostInput) (*domain.Post, error) {
	if err := validatePostFields(input.Title, input.Slug, input.Content); err != nil {
		return nil, err
	}

	post := &domain.Post{
		ID:            uuid.Must(uuid.NewV7()),
		Title:         strings.TrimSpace(input.Title),
		Slug:          resolveSlug(input.Slug, input.Title),
		Content:       input.Content,
		Excerpt:       input.Excerpt,
		FeaturedImage: input.FeaturedImage,
		Author:        input.Author,
		InstagramURL:  input.InstagramURL,
		Published:     input.Published,
	}
	if input.Published {
		now := time.Now().UTC()
		post.PublishedAt = &now
	}

	if err := uc.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// Update replaces the mutable fields of an existing blog post. The publication
// date is stamped on the transition to published, kept while the post stays
// published, and cleared when the post is unpublished.
func (uc *postUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input UpdatePostInput,
) (*domain.Post, error) {
	if err := validatePostFields(input.Title, input.Slug, input.Content); err != nil {
		return nil, err
	}

	post, err := uc.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch {
	case input.Published && !post.Published:
		now := time.Now().UTC()
		post.PublishedAt = &now
	case !input.Published:
		post.PublishedAt = nil
	}

	post.Title = strings.TrimSpace(input.Title)
	post.Slug = resolveSlug(input.Slug, input.Title)
	post.Content = input.Content
	post.Excerpt = input.Excerpt
	post.FeaturedImage = input.FeaturedImage
	post.Author = input.Author
	post.InstagramURL = input.InstagramURL
	post.Published = input.Published

	if err := uc.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// Get retrieves a blog post by ID.
func (uc *postUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	return uc.postRepo.GetByID(ctx, id)
}

// GetPublishedBySlug retrieves a published blog post by slug. Drafts are
// indistinguishable from missing posts for public readers.
func (uc *postUseCase) GetPublishedBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	post, err := uc.postRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !post.Published {
		return nil, domain.ErrPostNotFound
	}
	return post, nil
}

// List retrieves blog posts matching the filter.
func (uc *postUseCase) List(
	ctx context.Context,
	filter domain.Filter,
	offset, limit int,
) ([]*domain.Post, error) {
	return uc.postRepo.List(ctx, filter, offset, limit)
}

// Delete removes a blog post by ID.
func (uc *postUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.postRepo.Delete(ctx, id)
}
