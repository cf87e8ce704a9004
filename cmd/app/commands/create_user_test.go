package commands

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/portalaudio/cms/internal/auth/domain"
	userDomain "github.com/portalaudio/cms/internal/user/domain"
	userUseCase "github.com/portalaudio/cms/internal/user/usecase"
)

type mockUserUseCase struct {
	mock.Mock
}

func (m *mockUserUseCase) Create(ctx context.Context, input userUseCase.CreateUserInput) (*userDomain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *mockUserUseCase) List(ctx context.Context, offset, limit int) ([]*userDomain.User, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*userDomain.User), args.Error(1)
}

func (m *mockUserUseCase) Delete(ctx context.Context, actorID, userID uuid.UUID) error {
	args := m.Called(ctx, actorID, userID)
	return args.Error(0)
}

func TestRunCreateUser(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()
	userID := uuid.New()

	t.Run("non-interactive-text", func(t *testing.T) {
		mockUseCase := &mockUserUseCase{}
		input := userUseCase.CreateUserInput{
			Name:     "Ana Souza",
			Email:    "ana@portalaudio.com.br",
			Password: "super-secret",
		}
		user := &userDomain.User{
			ID:    userID,
			Name:  "Ana Souza",
			Email: "ana@portalaudio.com.br",
			Role:  authDomain.RoleAdmin,
		}

		mockUseCase.On("Create", ctx, input).Return(user, nil)

		var out bytes.Buffer
		io := IOTuple{
			Reader: nil,
			Writer: &out,
		}

		err := RunCreateUser(
			ctx,
			mockUseCase,
			logger,
			"Ana Souza",
			"ana@portalaudio.com.br",
			"super-secret",
			"text",
			io,
		)

		require.NoError(t, err)
		require.Contains(t, out.String(), userID.String())
		require.Contains(t, out.String(), "ana@portalaudio.com.br")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("interactive-json", func(t *testing.T) {
		mockUseCase := &mockUserUseCase{}
		input := userUseCase.CreateUserInput{
			Name:     "Ana Souza",
			Email:    "ana@portalaudio.com.br",
			Password: "super-secret",
		}
		user := &userDomain.User{
			ID:    userID,
			Name:  "Ana Souza",
			Email: "ana@portalaudio.com.br",
			Role:  authDomain.RoleAdmin,
		}

		mockUseCase.On("Create", ctx, input).Return(user, nil)

		// Simulate interactive password entry
		userInput := "super-secret\n"
		var out bytes.Buffer
		io := IOTuple{
			Reader: bytes.NewBufferString(userInput),
			Writer: &out,
		}

		err := RunCreateUser(ctx, mockUseCase, logger, "Ana Souza", "ana@portalaudio.com.br", "", "json", io)

		require.NoError(t, err)
		require.Contains(t, out.String(), userID.String())
		require.Contains(t, out.String(), "{") // Should be JSON
		mockUseCase.AssertExpectations(t)
	})

	t.Run("empty-interactive-password", func(t *testing.T) {
		mockUseCase := &mockUserUseCase{}

		userInput := "\n"
		var out bytes.Buffer
		io := IOTuple{
			Reader: bytes.NewBufferString(userInput),
			Writer: &out,
		}

		err := RunCreateUser(ctx, mockUseCase, logger, "Ana Souza", "ana@portalaudio.com.br", "", "text", io)

		require.Error(t, err)
		require.Contains(t, err.Error(), "password cannot be empty")
		mockUseCase.AssertNotCalled(t, "Create")
	})

	t.Run("use-case-error", func(t *testing.T) {
		mockUseCase := &mockUserUseCase{}

		mockUseCase.On("Create", ctx, mock.Anything).Return(nil, userDomain.ErrUserAlreadyExists)

		var out bytes.Buffer
		io := IOTuple{
			Reader: nil,
			Writer: &out,
		}

		err := RunCreateUser(ctx, mockUseCase, logger, "Ana Souza", "ana@portalaudio.com.br", "super-secret", "text", io)

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to create user")
		mockUseCase.AssertExpectations(t)
	})
}
