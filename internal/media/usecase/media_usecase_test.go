package usecase

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"

	apperrors "github.com/portalaudio/cms/internal/errors"
	"github.com/portalaudio/cms/internal/media/domain"
)

func TestMediaUseCase_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		bucket := memblob.OpenBucket(nil)
		defer func() {
			assert.NoError(t, bucket.Close())
		}()
		uc := NewMediaUseCase(bucket, "https://media.portalaudio.example", "products", 10<<20)

		media, err := uc.Upload(ctx, UploadInput{
			Filename:    "802-d4.JPG",
			ContentType: "image/jpeg",
			Size:        10,
			Body:        strings.NewReader("jpeg bytes"),
		})

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(media.Key, "products/"))
		assert.True(t, strings.HasSuffix(media.Key, ".jpg"))
		assert.Equal(t, "https://media.portalaudio.example/"+media.Key, media.URL)
		assert.Equal(t, "image/jpeg", media.ContentType)
		assert.Equal(t, int64(10), media.Size)

		reader, err := bucket.NewReader(ctx, media.Key, nil)
		require.NoError(t, err)
		content, err := io.ReadAll(reader)
		require.NoError(t, err)
		require.NoError(t, reader.Close())
		assert.Equal(t, []byte("jpeg bytes"), content)
	})

	t.Run("Success_UniqueKeys", func(t *testing.T) {
		bucket := memblob.OpenBucket(nil)
		defer func() {
			assert.NoError(t, bucket.Close())
		}()
		uc := NewMediaUseCase(bucket, "", "products", 0)

		first, err := uc.Upload(ctx, UploadInput{
			Filename:    "studio.png",
			ContentType: "image/png",
			Body:        strings.NewReader("first"),
		})
		require.NoError(t, err)

		second, err := uc.Upload(ctx, UploadInput{
			Filename:    "studio.png",
			ContentType: "image/png",
			Body:        strings.NewReader("second"),
		})
		require.NoError(t, err)

		assert.NotEqual(t, first.Key, second.Key)
	})

	t.Run("Failure_MissingFile", func(t *testing.T) {
		bucket := memblob.OpenBucket(nil)
		defer func() {
			assert.NoError(t, bucket.Close())
		}()
		uc := NewMediaUseCase(bucket, "", "products", 0)

		_, err := uc.Upload(ctx, UploadInput{
			Filename:    "802-d4.jpg",
			ContentType: "image/jpeg",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMissingFile)
	})

	t.Run("Failure_UnsupportedContentType", func(t *testing.T) {
		bucket := memblob.OpenBucket(nil)
		defer func() {
			assert.NoError(t, bucket.Close())
		}()
		uc := NewMediaUseCase(bucket, "", "products", 0)

		_, err := uc.Upload(ctx, UploadInput{
			Filename:    "notes.pdf",
			ContentType: "application/pdf",
			Body:        strings.NewReader("%PDF"),
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnsupportedMediaType)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Failure_FileTooLarge", func(t *testing.T) {
		bucket := memblob.OpenBucket(nil)
		defer func() {
			assert.NoError(t, bucket.Close())
		}()
		uc := NewMediaUseCase(bucket, "", "products", 4)

		_, err := uc.Upload(ctx, UploadInput{
			Filename:    "802-d4.jpg",
			ContentType: "image/jpeg",
			Size:        10,
			Body:        strings.NewReader("jpeg bytes"),
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	})
}
