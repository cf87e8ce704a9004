package app

import (
	"context"
	"fmt"
	"sync"

	mediaDomain "github.com/portalaudio/cms/internal/media/domain"
	mediaHTTP "github.com/portalaudio/cms/internal/media/http"
	mediaService "github.com/portalaudio/cms/internal/media/service"
	mediaUseCase "github.com/portalaudio/cms/internal/media/usecase"
)

// mediaComponents holds the lazily initialized media module components.
type mediaComponents struct {
	useCase     mediaUseCase.MediaUseCase
	useCaseInit sync.Once
	handler     *mediaHTTP.MediaHandler
	handlerInit sync.Once
}

// MediaBucket returns the blob bucket used for media uploads. The bucket is
// opened once and closed during container shutdown.
func (c *Container) MediaBucket() (mediaDomain.BlobBucket, error) {
	var err error
	c.mediaBucketInit.Do(func() {
		c.mediaBucket, err = c.initMediaBucket()
		if err != nil {
			c.initErrors["mediaBucket"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["mediaBucket"]; exists {
		return nil, storedErr
	}
	return c.mediaBucket, nil
}

// MediaUseCase returns the media use case instance.
func (c *Container) MediaUseCase() (mediaUseCase.MediaUseCase, error) {
	var err error
	c.media.useCaseInit.Do(func() {
		c.media.useCase, err = c.initMediaUseCase()
		if err != nil {
			c.initErrors["mediaUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["mediaUseCase"]; exists {
		return nil, storedErr
	}
	return c.media.useCase, nil
}

// MediaHandler returns the HTTP handler for media uploads.
func (c *Container) MediaHandler() (*mediaHTTP.MediaHandler, error) {
	var err error
	c.media.handlerInit.Do(func() {
		c.media.handler, err = c.initMediaHandler()
		if err != nil {
			c.initErrors["mediaHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["mediaHandler"]; exists {
		return nil, storedErr
	}
	return c.media.handler, nil
}

// initMediaBucket opens the blob bucket configured by the media bucket URL.
func (c *Container) initMediaBucket() (mediaDomain.BlobBucket, error) {
	blobService := mediaService.NewBlobService()

	bucket, err := blobService.OpenBucket(context.Background(), c.config.MediaBucketURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open media bucket: %w", err)
	}

	return bucket, nil
}

// initMediaUseCase creates the media use case with all its dependencies.
func (c *Container) initMediaUseCase() (mediaUseCase.MediaUseCase, error) {
	bucket, err := c.MediaBucket()
	if err != nil {
		return nil, fmt.Errorf("failed to get media bucket for media use case: %w", err)
	}

	return mediaUseCase.NewMediaUseCase(
		bucket,
		c.config.MediaPublicBaseURL,
		c.config.MediaKeyPrefix,
		c.config.MediaMaxUploadSize,
	), nil
}

// initMediaHandler creates the media HTTP handler with all its dependencies.
func (c *Container) initMediaHandler() (*mediaHTTP.MediaHandler, error) {
	useCase, err := c.MediaUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get media use case for media handler: %w", err)
	}

	return mediaHTTP.NewMediaHandler(useCase, c.Logger()), nil
}
