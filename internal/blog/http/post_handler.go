// Package http provides HTTP handlers for blog operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/portalaudio/cms/internal/blog/domain"
	"github.com/portalaudio/cms/internal/blog/http/dto"
	blogUseCase "github.com/portalaudio/cms/internal/blog/usecase"
	"github.com/portalaudio/cms/internal/httputil"
)

// PostHandler handles HTTP requests for blog post operations.
type PostHandler struct {
	postUseCase blogUseCase.PostUseCase
	logger      *slog.Logger
}

// NewPostHandler creates a new blog post handler with required dependencies.
func NewPostHandler(postUseCase blogUseCase.PostUseCase, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

// ListPublishedPostsHandler lists published posts, newest publication first.
// GET /v1/blog - Public.
func (h *PostHandler) ListPublishedPostsHandler(c *gin.Context) {
	offset, limit := httputil.ParsePagination(c)

	posts, err := h.postUseCase.List(
		c.Request.Context(), domain.Filter{PublishedOnly: true}, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPostsToListResponse(posts))
}

// GetPublishedPostHandler retrieves a published post by slug. Drafts return
// 404 as if they did not exist.
// GET /v1/blog/:slug - Public.
func (h *PostHandler) GetPublishedPostHandler(c *gin.Context) {
	post, err := h.postUseCase.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPostToResponse(post))
}

// ListAllPostsHandler lists all posts including drafts, newest first.
// GET /v1/admin/blog - Requires admin role.
func (h *PostHandler) ListAllPostsHandler(c *gin.Context) {
	offset, limit := httputil.ParsePagination(c)

	posts, err := h.postUseCase.List(c.Request.Context(), domain.Filter{}, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPostsToListResponse(posts))
}

// GetPostHandler retrieves a post by ID, draft or published.
// GET /v1/admin/blog/:id - Requires admin role.
func (h *PostHandler) GetPostHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid post id format: must be a valid UUID"),
			h.logger)
		return
	}

	post, err := h.postUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPostToResponse(post))
}

// CreatePostHandler creates a new blog post.
// POST /v1/admin/blog - Requires admin role.
// Returns 201 Created with the post.
func (h *PostHandler) CreatePostHandler(c *gin.Context) {
	input, ok := h.bindPostRequest(c)
	if !ok {
		return
	}

	post, err := h.postUseCase.Create(c.Request.Context(), blogUseCase.CreatePostInput(input))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapPostToResponse(post))
}

// UpdatePostHandler replaces the mutable fields of a blog post.
// PUT /v1/admin/blog/:id - Requires admin role.
func (h *PostHandler) UpdatePostHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid post id format: must be a valid UUID"),
			h.logger)
		return
	}

	input, ok := h.bindPostRequest(c)
	if !ok {
		return
	}

	post, err := h.postUseCase.Update(c.Request.Context(), id, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPostToResponse(post))
}

// DeletePostHandler removes a blog post.
// DELETE /v1/admin/blog/:id - Requires admin role.
// Returns 204 No Content on success.
func (h *PostHandler) DeletePostHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid post id format: must be a valid UUID"),
			h.logger)
		return
	}

	if err := h.postUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// bindPostRequest parses and validates the shared create/update payload.
func (h *PostHandler) bindPostRequest(c *gin.Context) (blogUseCase.UpdatePostInput, bool) {
	var req dto.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid request body: %w", err),
			h.logger)
		return blogUseCase.UpdatePostInput{}, false
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return blogUseCase.UpdatePostInput{}, false
	}

	return blogUseCase.UpdatePostInput{
		Title:         req.Title,
		Slug:          req.Slug,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		FeaturedImage: req.FeaturedImage,
		Author:        req.Author,
		InstagramURL:  req.InstagramURL,
		Published:     req.Published,
	}, true
}
