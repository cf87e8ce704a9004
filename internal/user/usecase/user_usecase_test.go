package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/portalaudio/cms/internal/auth/domain"
	apperrors "github.com/portalaudio/cms/internal/errors"
	"github.com/portalaudio/cms/internal/user/domain"
)

// mockUserRepository is a mock implementation of UserRepository for testing.
type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepository) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *mockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// mockPasswordService is a mock implementation of PasswordService for testing.
type mockPasswordService struct {
	mock.Mock
}

func (m *mockPasswordService) HashPassword(plainPassword string) (string, error) {
	args := m.Called(plainPassword)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordService) ComparePassword(plainPassword string, hashedPassword string) bool {
	args := m.Called(plainPassword, hashedPassword)
	return args.Bool(0)
}

func TestUserUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := &mockUserRepository{}
		mockPasswords := &mockPasswordService{}
		uc := NewUserUseCase(mockRepo, mockPasswords)

		mockPasswords.On("HashPassword", "SecurePass123!").Return("hashed-password", nil).Once()
		mockRepo.On("Create", ctx, mock.MatchedBy(func(user *domain.User) bool {
			return user.Email == "alex@example.com" &&
				user.Name == "Alex Doe" &&
				user.PasswordHash == "hashed-password" &&
				user.Role == authDomain.RoleAdmin &&
				user.ID != uuid.Nil
		})).Return(nil).Once()

		user, err := uc.Create(ctx, CreateUserInput{
			Name:     "Alex Doe",
			Email:    "alex@example.com",
			Password: "SecurePass123!",
		})

		require.NoError(t, err)
		assert.Equal(t, "Alex Doe", user.Name)
		assert.Equal(t, authDomain.RoleAdmin, user.Role)
		mockRepo.AssertExpectations(t)
		mockPasswords.AssertExpectations(t)
	})

	t.Run("Success_NameDefaultsToEmailLocalPart", func(t *testing.T) {
		mockRepo := &mockUserRepository{}
		mockPasswords := &mockPasswordService{}
		uc := NewUserUseCase(mockRepo, mockPasswords)

		mockPasswords.On("HashPassword", "SecurePass123!").Return("hashed-password", nil).Once()
		mockRepo.On("Create", ctx, mock.MatchedBy(func(user *domain.User) bool {
			return user.Name == "sales"
		})).Return(nil).Once()

		user, err := uc.Create(ctx, CreateUserInput{
			Email:    "sales@portalaudio.example",
			Password: "SecurePass123!",
		})

		require.NoError(t, err)
		assert.Equal(t, "sales", user.Name)
	})

	t.Run("Failure_WeakPassword", func(t *testing.T) {
		mockRepo := &mockUserRepository{}
		mockPasswords := &mockPasswordService{}
		uc := NewUserUseCase(mockRepo, mockPasswords)

		user, err := uc.Create(ctx, CreateUserInput{
			Email:    "alex@example.com",
			Password: "password",
		})

		assert.Nil(t, user)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		mockRepo.AssertNotCalled(t, "Create")
		mockPasswords.AssertNotCalled(t, "HashPassword")
	})

	t.Run("Failure_InvalidEmail", func(t *testing.T) {
		mockRepo := &mockUserRepository{}
		mockPasswords := &mockPasswordService{}
		uc := NewUserUseCase(mockRepo, mockPasswords)

		user, err := uc.Create(ctx, CreateUserInput{
			Email:    "not-an-email",
			Password: "SecurePass123!",
		})

		assert.Nil(t, user)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Failure_DuplicateEmail", func(t *testing.T) {
		mockRepo := &mockUserRepository{}
		mockPasswords := &mockPasswordService{}
		uc := NewUserUseCase(mockRepo, mockPasswords)

		mockPasswords.On("HashPassword", "SecurePass123!").Return("hashed-password", nil).Once()
		mockRepo.On("Create", ctx, mock.Anything).Return(domain.ErrUserAlreadyExists).Once()

		user, err := uc.Create(ctx, CreateUserInput{
			Email:    "alex@example.com",
			Password: "SecurePass123!",
		})

		assert.Nil(t, user)
		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	})
}

func TestUserUseCase_List(t *testing.T) {
	ctx := context.Background()

	mockRepo := &mockUserRepository{}
	mockPasswords := &mockPasswordService{}
	uc := NewUserUseCase(mockRepo, mockPasswords)

	users := []*domain.User{
		{ID: uuid.Must(uuid.NewV7()), Email: "first@example.com"},
		{ID: uuid.Must(uuid.NewV7()), Email: "second@example.com"},
	}
	mockRepo.On("List", ctx, 0, 50).Return(users, nil).Once()

	got, err := uc.List(ctx, 0, 50)

	require.NoError(t, err)
	assert.Equal(t, users, got)
	mockRepo.AssertExpectations(t)
}

func TestUserUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := &mockUserRepository{}
		mockPasswords := &mockPasswordService{}
		uc := NewUserUseCase(mockRepo, mockPasswords)

		actorID := uuid.Must(uuid.NewV7())
		targetID := uuid.Must(uuid.NewV7())
		mockRepo.On("Delete", ctx, targetID).Return(nil).Once()

		err := uc.Delete(ctx, actorID, targetID)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure_SelfDelete", func(t *testing.T) {
		mockRepo := &mockUserRepository{}
		mockPasswords := &mockPasswordService{}
		uc := NewUserUseCase(mockRepo, mockPasswords)

		actorID := uuid.Must(uuid.NewV7())

		err := uc.Delete(ctx, actorID, actorID)

		assert.ErrorIs(t, err, domain.ErrSelfDelete)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		mockRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("Failure_MissingActor", func(t *testing.T) {
		mockRepo := &mockUserRepository{}
		mockPasswords := &mockPasswordService{}
		uc := NewUserUseCase(mockRepo, mockPasswords)

		err := uc.Delete(ctx, uuid.Nil, uuid.Must(uuid.NewV7()))

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		mockRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("Failure_NotFound", func(t *testing.T) {
		mockRepo := &mockUserRepository{}
		mockPasswords := &mockPasswordService{}
		uc := NewUserUseCase(mockRepo, mockPasswords)

		actorID := uuid.Must(uuid.NewV7())
		targetID := uuid.Must(uuid.NewV7())
		mockRepo.On("Delete", ctx, targetID).Return(domain.ErrUserNotFound).Once()

		err := uc.Delete(ctx, actorID, targetID)

		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
