// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"
	"github.com/jellydator/validation/is"

	customValidation "github.com/portalaudio/cms/internal/validation"
)

// PostRequest represents the payload for creating or updating a blog post.
// Slug is optional; when blank the server derives one from the title.
type PostRequest struct {
	Title         string `json:"title"`
	Slug          string `json:"slug"`
	Content       string `json:"content"`
	Excerpt       string `json:"excerpt"`
	FeaturedImage string `json:"featured_image"`
	Author        string `json:"author"`
	InstagramURL  string `json:"instagram_url"`
	Published     bool   `json:"published"`
}

// Validate validates the blog post request.
func (r PostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255).Error("title must be between 1 and 255 characters"),
		),
		validation.Field(&r.Slug,
			customValidation.Slug,
			validation.Length(0, 255).Error("slug must be at most 255 characters"),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
		),
		validation.Field(&r.InstagramURL,
			is.URL.Error("instagram_url must be a valid URL"),
		),
	)
}
