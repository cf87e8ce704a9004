package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/portalaudio/cms/internal/auth/domain"
	authHTTP "github.com/portalaudio/cms/internal/auth/http"
	"github.com/portalaudio/cms/internal/user/domain"
	userUseCase "github.com/portalaudio/cms/internal/user/usecase"
)

// mockUserUseCase is a mock implementation of the user UseCase for testing.
type mockUserUseCase struct {
	mock.Mock
}

func (m *mockUserUseCase) Create(
	ctx context.Context,
	input userUseCase.CreateUserInput,
) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserUseCase) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *mockUserUseCase) Delete(ctx context.Context, actorID, userID uuid.UUID) error {
	args := m.Called(ctx, actorID, userID)
	return args.Error(0)
}

func newUserTestRouter(mockUC *mockUserUseCase, principal *authDomain.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewUserHandler(mockUC, slog.Default())

	router := gin.New()
	if principal != nil {
		router.Use(func(c *gin.Context) {
			ctx := authHTTP.WithPrincipal(c.Request.Context(), principal)
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}
	router.POST("/v1/admin/users", handler.CreateUserHandler)
	router.GET("/v1/admin/users", handler.ListUsersHandler)
	router.DELETE("/v1/admin/users/:id", handler.DeleteUserHandler)
	return router
}

func TestUserHandler_CreateUser(t *testing.T) {
	principal := &authDomain.Principal{UserID: uuid.Must(uuid.NewV7()), Role: authDomain.RoleAdmin}

	t.Run("Success", func(t *testing.T) {
		mockUC := &mockUserUseCase{}
		user := &domain.User{
			ID:    uuid.Must(uuid.NewV7()),
			Name:  "sales",
			Email: "sales@portalaudio.example",
			Role:  authDomain.RoleAdmin,
		}
		mockUC.On("Create", mock.Anything, userUseCase.CreateUserInput{
			Email:    "sales@portalaudio.example",
			Password: "SecurePass123!",
		}).Return(user, nil).Once()
		router := newUserTestRouter(mockUC, principal)

		body := `{"email":"sales@portalaudio.example","password":"SecurePass123!"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/users", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, user.ID.String(), resp["id"])
		assert.Equal(t, "sales", resp["name"])
		assert.NotContains(t, w.Body.String(), "password")
		mockUC.AssertExpectations(t)
	})

	t.Run("Failure_ShortPassword", func(t *testing.T) {
		mockUC := &mockUserUseCase{}
		router := newUserTestRouter(mockUC, principal)

		body := `{"email":"sales@portalaudio.example","password":"short"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/users", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUC.AssertNotCalled(t, "Create")
	})

	t.Run("Failure_DuplicateEmail", func(t *testing.T) {
		mockUC := &mockUserUseCase{}
		mockUC.On("Create", mock.Anything, mock.Anything).
			Return(nil, domain.ErrUserAlreadyExists).Once()
		router := newUserTestRouter(mockUC, principal)

		body := `{"email":"sales@portalaudio.example","password":"SecurePass123!"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/users", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestUserHandler_ListUsers(t *testing.T) {
	principal := &authDomain.Principal{UserID: uuid.Must(uuid.NewV7()), Role: authDomain.RoleAdmin}

	mockUC := &mockUserUseCase{}
	users := []*domain.User{
		{ID: uuid.Must(uuid.NewV7()), Name: "first", Email: "first@example.com", Role: authDomain.RoleAdmin},
		{ID: uuid.Must(uuid.NewV7()), Name: "second", Email: "second@example.com", Role: authDomain.RoleAdmin},
	}
	mockUC.On("List", mock.Anything, 0, 50).Return(users, nil).Once()
	router := newUserTestRouter(mockUC, principal)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/users", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
	mockUC.AssertExpectations(t)
}

func TestUserHandler_DeleteUser(t *testing.T) {
	principal := &authDomain.Principal{UserID: uuid.Must(uuid.NewV7()), Role: authDomain.RoleAdmin}

	t.Run("Success", func(t *testing.T) {
		mockUC := &mockUserUseCase{}
		targetID := uuid.Must(uuid.NewV7())
		mockUC.On("Delete", mock.Anything, principal.UserID, targetID).Return(nil).Once()
		router := newUserTestRouter(mockUC, principal)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/v1/admin/users/"+targetID.String(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		mockUC.AssertExpectations(t)
	})

	t.Run("Failure_SelfDelete", func(t *testing.T) {
		mockUC := &mockUserUseCase{}
		mockUC.On("Delete", mock.Anything, principal.UserID, principal.UserID).
			Return(domain.ErrSelfDelete).Once()
		router := newUserTestRouter(mockUC, principal)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/v1/admin/users/"+principal.UserID.String(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Failure_InvalidID", func(t *testing.T) {
		mockUC := &mockUserUseCase{}
		router := newUserTestRouter(mockUC, principal)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/v1/admin/users/not-a-uuid", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUC.AssertNotCalled(t, "Delete")
	})

	t.Run("Failure_NoPrincipal", func(t *testing.T) {
		mockUC := &mockUserUseCase{}
		router := newUserTestRouter(mockUC, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/v1/admin/users/"+uuid.New().String(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockUC.AssertNotCalled(t, "Delete")
	})

	t.Run("Failure_NotFound", func(t *testing.T) {
		mockUC := &mockUserUseCase{}
		targetID := uuid.Must(uuid.NewV7())
		mockUC.On("Delete", mock.Anything, principal.UserID, targetID).
			Return(domain.ErrUserNotFound).Once()
		router := newUserTestRouter(mockUC, principal)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/v1/admin/users/"+targetID.String(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
