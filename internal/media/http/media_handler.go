// Package http provides HTTP handlers for media uploads.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/portalaudio/cms/internal/httputil"
	"github.com/portalaudio/cms/internal/media/domain"
	"github.com/portalaudio/cms/internal/media/http/dto"
	mediaUseCase "github.com/portalaudio/cms/internal/media/usecase"
)

// MediaHandler handles HTTP requests for media uploads.
type MediaHandler struct {
	mediaUseCase mediaUseCase.MediaUseCase
	logger       *slog.Logger
}

// NewMediaHandler creates a new media handler with required dependencies.
func NewMediaHandler(mediaUseCase mediaUseCase.MediaUseCase, logger *slog.Logger) *MediaHandler {
	return &MediaHandler{
		mediaUseCase: mediaUseCase,
		logger:       logger,
	}
}

// UploadMediaHandler stores an uploaded image and returns its key and public URL.
// POST /v1/admin/media (multipart form, field "file") - Requires admin role.
// Returns 201 Created with the stored object.
func (h *MediaHandler) UploadMediaHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		httputil.HandleErrorGin(c, domain.ErrMissingFile, h.logger)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("failed to close uploaded file", slog.String("error", closeErr.Error()))
		}
	}()

	media, err := h.mediaUseCase.Upload(c.Request.Context(), mediaUseCase.UploadInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapMediaToResponse(media))
}
