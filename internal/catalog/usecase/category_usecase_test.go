package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/portalaudio/cms/internal/catalog/domain"
	apperrors "github.com/portalaudio/cms/internal/errors"
)

// mockCategoryRepository is a mock implementation of CategoryRepository for testing.
type mockCategoryRepository struct {
	mock.Mock
}

func (m *mockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *mockCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *mockCategoryRepository) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *mockCategoryRepository) List(ctx context.Context, offset, limit int) ([]*domain.Category, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCategoryUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_SlugDerivedFromName", func(t *testing.T) {
		mockRepo := &mockCategoryRepository{}
		uc := NewCategoryUseCase(mockRepo)

		mockRepo.On("Create", ctx, mock.MatchedBy(func(category *domain.Category) bool {
			return category.Name == "Studio Monitors" &&
				category.Slug == "studio-monitors" &&
				category.ID != uuid.Nil
		})).Return(nil).Once()

		category, err := uc.Create(ctx, CreateCategoryInput{Name: "Studio Monitors"})

		require.NoError(t, err)
		assert.Equal(t, "studio-monitors", category.Slug)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success_ExplicitSlug", func(t *testing.T) {
		mockRepo := &mockCategoryRepository{}
		uc := NewCategoryUseCase(mockRepo)

		mockRepo.On("Create", ctx, mock.MatchedBy(func(category *domain.Category) bool {
			return category.Slug == "monitors"
		})).Return(nil).Once()

		category, err := uc.Create(ctx, CreateCategoryInput{Name: "Studio Monitors", Slug: "monitors"})

		require.NoError(t, err)
		assert.Equal(t, "monitors", category.Slug)
	})

	t.Run("Failure_MissingName", func(t *testing.T) {
		mockRepo := &mockCategoryRepository{}
		uc := NewCategoryUseCase(mockRepo)

		category, err := uc.Create(ctx, CreateCategoryInput{})

		assert.Nil(t, category)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Failure_BadExplicitSlug", func(t *testing.T) {
		mockRepo := &mockCategoryRepository{}
		uc := NewCategoryUseCase(mockRepo)

		category, err := uc.Create(ctx, CreateCategoryInput{Name: "Monitors", Slug: "Not A Slug"})

		assert.Nil(t, category)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Failure_DuplicateSlug", func(t *testing.T) {
		mockRepo := &mockCategoryRepository{}
		uc := NewCategoryUseCase(mockRepo)

		mockRepo.On("Create", ctx, mock.Anything).Return(domain.ErrCategorySlugTaken).Once()

		category, err := uc.Create(ctx, CreateCategoryInput{Name: "Monitors"})

		assert.Nil(t, category)
		assert.ErrorIs(t, err, domain.ErrCategorySlugTaken)
	})
}

func TestCategoryUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := &mockCategoryRepository{}
		uc := NewCategoryUseCase(mockRepo)

		id := uuid.Must(uuid.NewV7())
		existing := &domain.Category{ID: id, Name: "Old Name", Slug: "old-name"}

		mockRepo.On("GetByID", ctx, id).Return(existing, nil).Once()
		mockRepo.On("Update", ctx, mock.MatchedBy(func(category *domain.Category) bool {
			return category.ID == id &&
				category.Name == "Floorstanding Speakers" &&
				category.Slug == "floorstanding-speakers"
		})).Return(nil).Once()

		category, err := uc.Update(ctx, id, UpdateCategoryInput{Name: "Floorstanding Speakers"})

		require.NoError(t, err)
		assert.Equal(t, "floorstanding-speakers", category.Slug)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure_NotFound", func(t *testing.T) {
		mockRepo := &mockCategoryRepository{}
		uc := NewCategoryUseCase(mockRepo)

		id := uuid.Must(uuid.NewV7())
		mockRepo.On("GetByID", ctx, id).Return(nil, domain.ErrCategoryNotFound).Once()

		category, err := uc.Update(ctx, id, UpdateCategoryInput{Name: "Monitors"})

		assert.Nil(t, category)
		assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
		mockRepo.AssertNotCalled(t, "Update")
	})
}

func TestCategoryUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	mockRepo := &mockCategoryRepository{}
	uc := NewCategoryUseCase(mockRepo)

	id := uuid.Must(uuid.NewV7())
	mockRepo.On("Delete", ctx, id).Return(nil).Once()

	err := uc.Delete(ctx, id)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
