package usecase

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"gocloud.dev/blob"

	"github.com/portalaudio/cms/internal/media/domain"
)

// allowedContentTypes lists the image types accepted for upload.
var allowedContentTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
	"image/avif": {},
}

// mediaUseCase implements MediaUseCase.
type mediaUseCase struct {
	bucket        domain.BlobBucket
	publicBaseURL string
	keyPrefix     string
	maxUploadSize int64
}

// NewMediaUseCase creates a new MediaUseCase.
func NewMediaUseCase(
	bucket domain.BlobBucket,
	publicBaseURL string,
	keyPrefix string,
	maxUploadSize int64,
) MediaUseCase {
	return &mediaUseCase{
		bucket:        bucket,
		publicBaseURL: publicBaseURL,
		keyPrefix:     keyPrefix,
		maxUploadSize: maxUploadSize,
	}
}

// Upload stores an image in the configured bucket under a generated key and
// returns the key and public URL. The original filename only contributes its
// extension; the key itself is a UUIDv7 so uploads never collide.
func (uc *mediaUseCase) Upload(ctx context.Context, input UploadInput) (*domain.Media, error) {
	if input.Body == nil {
		return nil, domain.ErrMissingFile
	}
	if _, ok := allowedContentTypes[input.ContentType]; !ok {
		return nil, domain.ErrUnsupportedMediaType
	}
	if uc.maxUploadSize > 0 && input.Size > uc.maxUploadSize {
		return nil, domain.ErrFileTooLarge
	}

	key := uc.objectKey(input.Filename)

	writer, err := uc.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: input.ContentType,
	})
	if err != nil {
		return nil, err
	}

	size, err := io.Copy(writer, input.Body)
	if err != nil {
		_ = writer.Close()
		_ = uc.bucket.Delete(ctx, key)
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	return &domain.Media{
		Key:         key,
		URL:         uc.publicURL(key),
		ContentType: input.ContentType,
		Size:        size,
	}, nil
}

// objectKey builds "<prefix>/<uuidv7><ext>" from the original filename.
func (uc *mediaUseCase) objectKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	key := uuid.Must(uuid.NewV7()).String() + ext
	if uc.keyPrefix != "" {
		key = strings.Trim(uc.keyPrefix, "/") + "/" + key
	}
	return key
}

func (uc *mediaUseCase) publicURL(key string) string {
	if uc.publicBaseURL == "" {
		return key
	}
	return strings.TrimRight(uc.publicBaseURL, "/") + "/" + key
}
