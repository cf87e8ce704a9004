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

// mockProductRepository is a mock implementation of ProductRepository for testing.
type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *mockProductRepository) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *mockProductRepository) List(
	ctx context.Context,
	filter domain.ProductFilter,
	offset, limit int,
) ([]*domain.Product, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Product), args.Error(1)
}

func (m *mockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestProductUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_SlugDerivedFromName", func(t *testing.T) {
		mockProducts := &mockProductRepository{}
		mockCategories := &mockCategoryRepository{}
		uc := NewProductUseCase(mockProducts, mockCategories)

		mockProducts.On("Create", ctx, mock.MatchedBy(func(product *domain.Product) bool {
			return product.Name == "B&W 802 D4" &&
				product.Slug == "b-w-802-d4" &&
				product.ID != uuid.Nil
		})).Return(nil).Once()

		product, err := uc.Create(ctx, CreateProductInput{
			Name:  "B&W 802 D4",
			Brand: "Bowers & Wilkins",
			Specifications: map[string]any{
				"sensitivity": "90 dB",
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "b-w-802-d4", product.Slug)
		mockProducts.AssertExpectations(t)
		mockCategories.AssertNotCalled(t, "GetByID")
	})

	t.Run("Success_WithExistingCategory", func(t *testing.T) {
		mockProducts := &mockProductRepository{}
		mockCategories := &mockCategoryRepository{}
		uc := NewProductUseCase(mockProducts, mockCategories)

		categoryID := uuid.Must(uuid.NewV7())
		mockCategories.On("GetByID", ctx, categoryID).
			Return(&domain.Category{ID: categoryID}, nil).Once()
		mockProducts.On("Create", ctx, mock.Anything).Return(nil).Once()

		product, err := uc.Create(ctx, CreateProductInput{
			Name:       "KEF LS50 Meta",
			CategoryID: &categoryID,
		})

		require.NoError(t, err)
		assert.Equal(t, &categoryID, product.CategoryID)
		mockCategories.AssertExpectations(t)
	})

	t.Run("Failure_UnknownCategory", func(t *testing.T) {
		mockProducts := &mockProductRepository{}
		mockCategories := &mockCategoryRepository{}
		uc := NewProductUseCase(mockProducts, mockCategories)

		categoryID := uuid.Must(uuid.NewV7())
		mockCategories.On("GetByID", ctx, categoryID).
			Return(nil, domain.ErrCategoryNotFound).Once()

		product, err := uc.Create(ctx, CreateProductInput{
			Name:       "KEF LS50 Meta",
			CategoryID: &categoryID,
		})

		assert.Nil(t, product)
		assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
		mockProducts.AssertNotCalled(t, "Create")
	})

	t.Run("Failure_MissingName", func(t *testing.T) {
		mockProducts := &mockProductRepository{}
		mockCategories := &mockCategoryRepository{}
		uc := NewProductUseCase(mockProducts, mockCategories)

		product, err := uc.Create(ctx, CreateProductInput{})

		assert.Nil(t, product)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestProductUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ReplacesAllMutableFields", func(t *testing.T) {
		mockProducts := &mockProductRepository{}
		mockCategories := &mockCategoryRepository{}
		uc := NewProductUseCase(mockProducts, mockCategories)

		id := uuid.Must(uuid.NewV7())
		price := 3499.0
		existing := &domain.Product{
			ID:       id,
			Name:     "Old Name",
			Slug:     "old-name",
			Featured: true,
		}

		mockProducts.On("GetByID", ctx, id).Return(existing, nil).Once()
		mockProducts.On("Update", ctx, mock.MatchedBy(func(product *domain.Product) bool {
			return product.ID == id &&
				product.Name == "KEF LS50 Meta" &&
				product.Slug == "kef-ls50-meta" &&
				product.Price != nil && *product.Price == price &&
				!product.Featured
		})).Return(nil).Once()

		product, err := uc.Update(ctx, id, UpdateProductInput{
			Name:  "KEF LS50 Meta",
			Price: &price,
		})

		require.NoError(t, err)
		assert.False(t, product.Featured, "fields absent from the update input reset")
		mockProducts.AssertExpectations(t)
	})

	t.Run("Failure_NotFound", func(t *testing.T) {
		mockProducts := &mockProductRepository{}
		mockCategories := &mockCategoryRepository{}
		uc := NewProductUseCase(mockProducts, mockCategories)

		id := uuid.Must(uuid.NewV7())
		mockProducts.On("GetByID", ctx, id).Return(nil, domain.ErrProductNotFound).Once()

		product, err := uc.Update(ctx, id, UpdateProductInput{Name: "KEF LS50 Meta"})

		assert.Nil(t, product)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
		mockProducts.AssertNotCalled(t, "Update")
	})
}

func TestProductUseCase_List(t *testing.T) {
	ctx := context.Background()

	mockProducts := &mockProductRepository{}
	mockCategories := &mockCategoryRepository{}
	uc := NewProductUseCase(mockProducts, mockCategories)

	featured := true
	filter := domain.ProductFilter{CategorySlug: "speakers", Featured: &featured}
	products := []*domain.Product{{ID: uuid.Must(uuid.NewV7()), Name: "KEF LS50 Meta"}}

	mockProducts.On("List", ctx, filter, 0, 50).Return(products, nil).Once()

	got, err := uc.List(ctx, filter, 0, 50)

	require.NoError(t, err)
	assert.Equal(t, products, got)
	mockProducts.AssertExpectations(t)
}

func TestProductUseCase_GetBySlug(t *testing.T) {
	ctx := context.Background()

	mockProducts := &mockProductRepository{}
	mockCategories := &mockCategoryRepository{}
	uc := NewProductUseCase(mockProducts, mockCategories)

	t.Run("Success", func(t *testing.T) {
		product := &domain.Product{ID: uuid.Must(uuid.NewV7()), Slug: "kef-ls50-meta"}
		mockProducts.On("GetBySlug", ctx, "kef-ls50-meta").Return(product, nil).Once()

		got, err := uc.GetBySlug(ctx, "kef-ls50-meta")

		require.NoError(t, err)
		assert.Equal(t, product, got)
	})

	t.Run("Failure_NotFound", func(t *testing.T) {
		mockProducts.On("GetBySlug", ctx, "missing").Return(nil, domain.ErrProductNotFound).Once()

		got, err := uc.GetBySlug(ctx, "missing")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
