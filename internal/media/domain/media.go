// Package domain contains the core business entities and rules for media uploads.
package domain

import (
	"context"

	"gocloud.dev/blob"

	"github.com/portalaudio/cms/internal/errors"
)

// Media represents a stored media object.
type Media struct {
	Key         string
	URL         string
	ContentType string
	Size        int64
}

// BlobBucket abstracts the bucket operations used by media uploads.
// *blob.Bucket implements this interface.
type BlobBucket interface {
	NewWriter(ctx context.Context, key string, opts *blob.WriterOptions) (*blob.Writer, error)
	Delete(ctx context.Context, key string) error
	Close() error
}

// Media errors wrap the base error taxonomy.
var (
	// ErrMissingFile indicates the upload request carried no file.
	ErrMissingFile = errors.Wrap(errors.ErrInvalidInput, "no file provided")
	// ErrUnsupportedMediaType indicates the uploaded file is not an image.
	ErrUnsupportedMediaType = errors.Wrap(errors.ErrInvalidInput, "unsupported media type")
	// ErrFileTooLarge indicates the uploaded file exceeds the size limit.
	ErrFileTooLarge = errors.Wrap(errors.ErrInvalidInput, "file too large")
)
