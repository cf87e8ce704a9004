package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/portalaudio/cms/internal/auth/domain"
	apperrors "github.com/portalaudio/cms/internal/errors"
)

// sessionClaims extends the registered JWT claims with the role snapshot
// embedded at mint time.
type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// sessionService implements SessionService using HMAC-SHA256 signed JWTs.
type sessionService struct {
	secret     []byte
	expiration time.Duration
}

// Mint creates a signed session token carrying the user id as subject and the
// role as a custom claim.
func (s *sessionService) Mint(userID uuid.UUID, role domain.Role) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiration)

	claims := sessionClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, apperrors.Wrap(err, "failed to sign session token")
	}

	return token, expiresAt, nil
}

// Verify parses and validates a session token. Every failure maps to an error
// wrapping errors.ErrUnauthorized; callers never learn more than that the
// session is not valid.
func (s *sessionService) Verify(tokenString string) (*domain.Principal, error) {
	claims := &sessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrSessionExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrSignatureInvalid):
			return nil, domain.ErrSessionSignature
		default:
			return nil, domain.ErrSessionMalformed
		}
	}
	if !token.Valid {
		return nil, domain.ErrSessionMalformed
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domain.ErrSessionMalformed
	}

	role := domain.Role(claims.Role)
	if !role.Valid() {
		return nil, domain.ErrSessionMalformed
	}

	return &domain.Principal{
		UserID: userID,
		Role:   role,
	}, nil
}

// NewSessionService creates a new SessionService signing tokens with the given
// secret. Tokens expire after the given duration.
func NewSessionService(secret string, expiration time.Duration) (SessionService, error) {
	if secret == "" {
		return nil, apperrors.New("session secret must be provided")
	}

	return &sessionService{
		secret:     []byte(secret),
		expiration: expiration,
	}, nil
}
