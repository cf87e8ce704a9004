package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/portalaudio/cms/internal/auth/domain"
	"github.com/portalaudio/cms/internal/auth/usecase"
	usecaseMocks "github.com/portalaudio/cms/internal/auth/usecase/mocks"
)

// mockBusinessMetrics is a local mock for metrics.BusinessMetrics to avoid dependency issues.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func TestAuthUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Login success", func(t *testing.T) {
		mockNext := &usecaseMocks.MockAuthUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewAuthUseCaseWithMetrics(mockNext, mockMetrics)

		input := usecase.LoginInput{Email: "alex@example.com", Password: "SecurePass123!"}
		session := &authDomain.Session{Token: "signed-token", UserID: uuid.New(), Role: authDomain.RoleAdmin}

		mockNext.On("Login", ctx, input).Return(session, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "auth", "login", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "login", mock.AnythingOfType("time.Duration"), "success").
			Return().Once()

		got, err := uc.Login(ctx, input)

		assert.NoError(t, err)
		assert.Equal(t, session, got)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Login error", func(t *testing.T) {
		mockNext := &usecaseMocks.MockAuthUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewAuthUseCaseWithMetrics(mockNext, mockMetrics)

		input := usecase.LoginInput{Email: "alex@example.com", Password: "WrongPass123!"}

		mockNext.On("Login", ctx, input).Return(nil, authDomain.ErrInvalidCredentials).Once()
		mockMetrics.On("RecordOperation", ctx, "auth", "login", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "login", mock.AnythingOfType("time.Duration"), "error").
			Return().Once()

		got, err := uc.Login(ctx, input)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Authenticate success", func(t *testing.T) {
		mockNext := &usecaseMocks.MockAuthUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewAuthUseCaseWithMetrics(mockNext, mockMetrics)

		principal := &authDomain.Principal{UserID: uuid.New(), Role: authDomain.RoleAdmin}

		mockNext.On("Authenticate", ctx, "signed-token").Return(principal, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "auth", "authenticate", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "authenticate", mock.AnythingOfType("time.Duration"), "success").
			Return().Once()

		got, err := uc.Authenticate(ctx, "signed-token")

		assert.NoError(t, err)
		assert.Equal(t, principal, got)
		mockMetrics.AssertExpectations(t)
	})
}
