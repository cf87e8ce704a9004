package service

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portalaudio/cms/internal/auth/domain"
	apperrors "github.com/portalaudio/cms/internal/errors"
)

const testSessionSecret = "test-secret-key-for-session-tokens"

func newTestSessionService(t *testing.T, expiration time.Duration) SessionService {
	t.Helper()
	service, err := NewSessionService(testSessionSecret, expiration)
	require.NoError(t, err)
	return service
}

func TestNewSessionService(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		service, err := NewSessionService(testSessionSecret, time.Hour)
		require.NoError(t, err)
		assert.NotNil(t, service)
	})

	t.Run("Failure_EmptySecret", func(t *testing.T) {
		service, err := NewSessionService("", time.Hour)
		assert.Error(t, err)
		assert.Nil(t, service)
	})
}

func TestSessionService_MintAndVerify(t *testing.T) {
	service := newTestSessionService(t, time.Hour)
	userID := uuid.New()

	token, expiresAt, err := service.Mint(userID, domain.RoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	principal, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, principal.UserID)
	assert.Equal(t, domain.RoleAdmin, principal.Role)
}

func TestSessionService_Verify_Expired(t *testing.T) {
	t.Run("Failure_ExpiredToken", func(t *testing.T) {
		service := newTestSessionService(t, -time.Minute)

		token, _, err := service.Mint(uuid.New(), domain.RoleAdmin)
		require.NoError(t, err)

		principal, err := service.Verify(token)
		assert.Nil(t, principal)
		assert.ErrorIs(t, err, domain.ErrSessionExpired)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("Failure_ExpiredTokenWithWrongSecret", func(t *testing.T) {
		// Expired tokens fail even when the signature check would also fail.
		other, err := NewSessionService("a-completely-different-secret", -time.Minute)
		require.NoError(t, err)

		token, _, err := other.Mint(uuid.New(), domain.RoleAdmin)
		require.NoError(t, err)

		service := newTestSessionService(t, time.Hour)
		principal, err := service.Verify(token)
		assert.Nil(t, principal)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}

func TestSessionService_Verify_Signature(t *testing.T) {
	service := newTestSessionService(t, time.Hour)

	t.Run("Failure_WrongSecret", func(t *testing.T) {
		other, err := NewSessionService("a-completely-different-secret", time.Hour)
		require.NoError(t, err)

		token, _, err := other.Mint(uuid.New(), domain.RoleAdmin)
		require.NoError(t, err)

		principal, err := service.Verify(token)
		assert.Nil(t, principal)
		assert.ErrorIs(t, err, domain.ErrSessionSignature)
	})

	t.Run("Failure_TamperedPayload", func(t *testing.T) {
		token, _, err := service.Mint(uuid.New(), domain.RoleAdmin)
		require.NoError(t, err)

		// Swap in a forged payload while keeping the original signature.
		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)
		forged := base64.RawURLEncoding.EncodeToString(
			[]byte(`{"role":"admin","sub":"` + uuid.New().String() + `"}`),
		)
		tampered := parts[0] + "." + forged + "." + parts[2]

		principal, err := service.Verify(tampered)
		assert.Nil(t, principal)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("Failure_UnsignedToken", func(t *testing.T) {
		claims := sessionClaims{
			Role: string(domain.RoleAdmin),
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   uuid.New().String(),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		principal, err := service.Verify(unsigned)
		assert.Nil(t, principal)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}

func TestSessionService_Verify_Malformed(t *testing.T) {
	service := newTestSessionService(t, time.Hour)

	t.Run("Failure_Garbage", func(t *testing.T) {
		principal, err := service.Verify("not-a-token")
		assert.Nil(t, principal)
		assert.ErrorIs(t, err, domain.ErrSessionMalformed)
	})

	t.Run("Failure_Empty", func(t *testing.T) {
		principal, err := service.Verify("")
		assert.Nil(t, principal)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("Failure_UnknownRole", func(t *testing.T) {
		claims := sessionClaims{
			Role: "superuser",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   uuid.New().String(),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
			SignedString([]byte(testSessionSecret))
		require.NoError(t, err)

		principal, err := service.Verify(token)
		assert.Nil(t, principal)
		assert.ErrorIs(t, err, domain.ErrSessionMalformed)
	})

	t.Run("Failure_SubjectNotUUID", func(t *testing.T) {
		claims := sessionClaims{
			Role: string(domain.RoleAdmin),
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-42",
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
			SignedString([]byte(testSessionSecret))
		require.NoError(t, err)

		principal, err := service.Verify(token)
		assert.Nil(t, principal)
		assert.ErrorIs(t, err, domain.ErrSessionMalformed)
	})
}
