// Package usecase implements business logic orchestration for media uploads.
package usecase

import (
	"context"
	"io"

	"github.com/portalaudio/cms/internal/media/domain"
)

// UploadInput contains the input data for storing a media object.
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// MediaUseCase defines the interface for media business logic.
type MediaUseCase interface {
	Upload(ctx context.Context, input UploadInput) (*domain.Media, error)
}
