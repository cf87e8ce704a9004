package dto

import (
	"time"

	"github.com/portalaudio/cms/internal/blog/domain"
)

// PostResponse represents a blog post in API responses.
type PostResponse struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Content       string     `json:"content"`
	Excerpt       string     `json:"excerpt"`
	FeaturedImage string     `json:"featured_image"`
	Author        string     `json:"author"`
	InstagramURL  string     `json:"instagram_url"`
	Published     bool       `json:"published"`
	PublishedAt   *time.Time `json:"published_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ListPostsResponse represents a list of blog posts in API responses.
type ListPostsResponse struct {
	Data []PostResponse `json:"data"`
}

// MapPostToResponse converts a domain post to a response DTO.
func MapPostToResponse(post *domain.Post) PostResponse {
	return PostResponse{
		ID:            post.ID.String(),
		Title:         post.Title,
		Slug:          post.Slug,
		Content:       post.Content,
		Excerpt:       post.Excerpt,
		FeaturedImage: post.FeaturedImage,
		Author:        post.Author,
		InstagramURL:  post.InstagramURL,
		Published:     post.Published,
		PublishedAt:   post.PublishedAt,
		CreatedAt:     post.CreatedAt,
		UpdatedAt:     post.UpdatedAt,
	}
}

// MapPostsToListResponse converts a slice of domain posts to a list response DTO.
func MapPostsToListResponse(posts []*domain.Post) ListPostsResponse {
	data := make([]PostResponse, len(posts))
	for i, post := range posts {
		data[i] = MapPostToResponse(post)
	}
	return ListPostsResponse{Data: data}
}
