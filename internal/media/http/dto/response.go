// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"github.com/portalaudio/cms/internal/media/domain"
)

// MediaResponse represents an uploaded media object in API responses.
type MediaResponse struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// MapMediaToResponse converts a domain media object to a response DTO.
func MapMediaToResponse(media *domain.Media) MediaResponse {
	return MediaResponse{
		Key:         media.Key,
		URL:         media.URL,
		ContentType: media.ContentType,
		Size:        media.Size,
	}
}
