// Package service provides blob storage access for media uploads using gocloud.dev/blob.
package service

import (
	"context"
	"fmt"

	"gocloud.dev/blob"

	mediaDomain "github.com/portalaudio/cms/internal/media/domain"

	// Register all blob storage provider drivers
	_ "gocloud.dev/blob/azureblob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// BlobService opens storage buckets for media uploads.
type BlobService interface {
	// OpenBucket opens a blob.Bucket for the configured storage provider.
	// Returns an error if the bucket URL is invalid or connection fails.
	OpenBucket(ctx context.Context, bucketURL string) (mediaDomain.BlobBucket, error)
}

// blobService implements BlobService using gocloud.dev/blob.
type blobService struct{}

// NewBlobService creates a new blob service instance.
func NewBlobService() BlobService {
	return &blobService{}
}

// OpenBucket opens a blob.Bucket for the configured storage provider using the bucketURL.
// Supports: s3://, gs://, azblob://, file://, mem://
// Returns a BlobBucket which *blob.Bucket implements.
func (b *blobService) OpenBucket(ctx context.Context, bucketURL string) (mediaDomain.BlobBucket, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open blob bucket: %w", err)
	}
	return bucket, nil
}
