package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/portalaudio/cms/internal/blog/domain"
	apperrors "github.com/portalaudio/cms/internal/errors"
)

// mockPostRepository is a mock implementation of PostRepository for testing.
type mockPostRepository struct {
	mock.Mock
}

func (m *mockPostRepository) Create(ctx context.Context, post *domain.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *mockPostRepository) Update(ctx context.Context, post *domain.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *mockPostRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *mockPostRepository) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *mockPostRepository) List(
	ctx context.Context,
	filter domain.Filter,
	offset, limit int,
) ([]*domain.Post, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Post), args.Error(1)
}

func (m *mockPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestPostUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_DraftWithDerivedSlug", func(t *testing.T) {
		mockRepo := &mockPostRepository{}
		uc := NewPostUseCase(mockRepo)

		mockRepo.On("Create", ctx, mock.MatchedBy(func(post *domain.Post) bool {
			return post.Slug == "listening-room-acoustics-101" &&
				!post.Published &&
				post.PublishedAt == nil &&
				post.ID != uuid.Nil
		})).Return(nil).Once()

		post, err := uc.Create(ctx, CreatePostInput{
			Title:   "Listening Room Acoustics 101",
			Content: "Room treatment matters more than cables.",
		})

		require.NoError(t, err)
		assert.Equal(t, "listening-room-acoustics-101", post.Slug)
		assert.Nil(t, post.PublishedAt)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success_PublishedStampsDate", func(t *testing.T) {
		mockRepo := &mockPostRepository{}
		uc := NewPostUseCase(mockRepo)

		mockRepo.On("Create", ctx, mock.MatchedBy(func(post *domain.Post) bool {
			return post.Published && post.PublishedAt != nil
		})).Return(nil).Once()

		post, err := uc.Create(ctx, CreatePostInput{
			Title:     "New Arrivals",
			Content:   "Fresh stock from the spring lineup.",
			Published: true,
		})

		require.NoError(t, err)
		require.NotNil(t, post.PublishedAt)
		assert.WithinDuration(t, time.Now().UTC(), *post.PublishedAt, time.Minute)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure_MissingContent", func(t *testing.T) {
		mockRepo := &mockPostRepository{}
		uc := NewPostUseCase(mockRepo)

		_, err := uc.Create(ctx, CreatePostInput{Title: "Untitled"})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Failure_DuplicateSlug", func(t *testing.T) {
		mockRepo := &mockPostRepository{}
		uc := NewPostUseCase(mockRepo)

		mockRepo.On("Create", ctx, mock.Anything).Return(domain.ErrPostSlugTaken).Once()

		_, err := uc.Create(ctx, CreatePostInput{
			Title:   "New Arrivals",
			Content: "Fresh stock.",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})
}

func TestPostUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_PublishTransitionStampsDate", func(t *testing.T) {
		mockRepo := &mockPostRepository{}
		uc := NewPostUseCase(mockRepo)

		postID := uuid.Must(uuid.NewV7())
		existing := &domain.Post{
			ID:      postID,
			Title:   "Draft Post",
			Slug:    "draft-post",
			Content: "Draft content.",
		}
		mockRepo.On("GetByID", ctx, postID).Return(existing, nil).Once()
		mockRepo.On("Update", ctx, mock.MatchedBy(func(post *domain.Post) bool {
			return post.Published && post.PublishedAt != nil
		})).Return(nil).Once()

		post, err := uc.Update(ctx, postID, UpdatePostInput{
			Title:     "Draft Post",
			Content:   "Draft content.",
			Published: true,
		})

		require.NoError(t, err)
		require.NotNil(t, post.PublishedAt)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success_AlreadyPublishedKeepsDate", func(t *testing.T) {
		mockRepo := &mockPostRepository{}
		uc := NewPostUseCase(mockRepo)

		postID := uuid.Must(uuid.NewV7())
		publishedAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
		existing := &domain.Post{
			ID:          postID,
			Title:       "Spring Lineup",
			Slug:        "spring-lineup",
			Content:     "Original content.",
			Published:   true,
			PublishedAt: &publishedAt,
		}
		mockRepo.On("GetByID", ctx, postID).Return(existing, nil).Once()
		mockRepo.On("Update", ctx, mock.MatchedBy(func(post *domain.Post) bool {
			return post.Published &&
				post.PublishedAt != nil &&
				post.PublishedAt.Equal(publishedAt)
		})).Return(nil).Once()

		_, err := uc.Update(ctx, postID, UpdatePostInput{
			Title:     "Spring Lineup",
			Content:   "Edited content.",
			Published: true,
		})

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success_UnpublishClearsDate", func(t *testing.T) {
		mockRepo := &mockPostRepository{}
		uc := NewPostUseCase(mockRepo)

		postID := uuid.Must(uuid.NewV7())
		publishedAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
		existing := &domain.Post{
			ID:          postID,
			Title:       "Spring Lineup",
			Slug:        "spring-lineup",
			Content:     "Content.",
			Published:   true,
			PublishedAt: &publishedAt,
		}
		mockRepo.On("GetByID", ctx, postID).Return(existing, nil).Once()
		mockRepo.On("Update", ctx, mock.MatchedBy(func(post *domain.Post) bool {
			return !post.Published && post.PublishedAt == nil
		})).Return(nil).Once()

		post, err := uc.Update(ctx, postID, UpdatePostInput{
			Title:   "Spring Lineup",
			Content: "Content.",
		})

		require.NoError(t, err)
		assert.Nil(t, post.PublishedAt)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure_NotFound", func(t *testing.T) {
		mockRepo := &mockPostRepository{}
		uc := NewPostUseCase(mockRepo)

		postID := uuid.Must(uuid.NewV7())
		mockRepo.On("GetByID", ctx, postID).Return(nil, domain.ErrPostNotFound).Once()

		_, err := uc.Update(ctx, postID, UpdatePostInput{
			Title:   "Spring Lineup",
			Content: "Content.",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrPostNotFound)
		mockRepo.AssertNotCalled(t, "Update")
	})
}

func TestPostUseCase_GetPublishedBySlug(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := &mockPostRepository{}
		uc := NewPostUseCase(mockRepo)

		publishedAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
		post := &domain.Post{
			ID:          uuid.Must(uuid.NewV7()),
			Slug:        "spring-lineup",
			Published:   true,
			PublishedAt: &publishedAt,
		}
		mockRepo.On("GetBySlug", ctx, "spring-lineup").Return(post, nil).Once()

		result, err := uc.GetPublishedBySlug(ctx, "spring-lineup")

		require.NoError(t, err)
		assert.Equal(t, post.ID, result.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure_DraftHiddenFromPublic", func(t *testing.T) {
		mockRepo := &mockPostRepository{}
		uc := NewPostUseCase(mockRepo)

		draft := &domain.Post{
			ID:   uuid.Must(uuid.NewV7()),
			Slug: "unreleased-preview",
		}
		mockRepo.On("GetBySlug", ctx, "unreleased-preview").Return(draft, nil).Once()

		_, err := uc.GetPublishedBySlug(ctx, "unreleased-preview")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrPostNotFound)
	})

	t.Run("Failure_NotFound", func(t *testing.T) {
		mockRepo := &mockPostRepository{}
		uc := NewPostUseCase(mockRepo)

		mockRepo.On("GetBySlug", ctx, "missing").Return(nil, domain.ErrPostNotFound).Once()

		_, err := uc.GetPublishedBySlug(ctx, "missing")

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestPostUseCase_List(t *testing.T) {
	ctx := context.Background()

	mockRepo := &mockPostRepository{}
	uc := NewPostUseCase(mockRepo)

	posts := []*domain.Post{
		{ID: uuid.Must(uuid.NewV7()), Title: "Spring Lineup", Published: true},
	}
	mockRepo.On("List", ctx, domain.Filter{PublishedOnly: true}, 0, 50).
		Return(posts, nil).Once()

	result, err := uc.List(ctx, domain.Filter{PublishedOnly: true}, 0, 50)

	require.NoError(t, err)
	assert.Len(t, result, 1)
	mockRepo.AssertExpectations(t)
}

func TestPostUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := &mockPostRepository{}
		uc := NewPostUseCase(mockRepo)

		postID := uuid.Must(uuid.NewV7())
		mockRepo.On("Delete", ctx, postID).Return(nil).Once()

		err := uc.Delete(ctx, postID)

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure_NotFound", func(t *testing.T) {
		mockRepo := &mockPostRepository{}
		uc := NewPostUseCase(mockRepo)

		postID := uuid.Must(uuid.NewV7())
		mockRepo.On("Delete", ctx, postID).Return(domain.ErrPostNotFound).Once()

		err := uc.Delete(ctx, postID)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
