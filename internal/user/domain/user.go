// Package domain defines the core user domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	authDomain "github.com/portalaudio/cms/internal/auth/domain"
	"github.com/portalaudio/cms/internal/errors"
)

// User represents an administrative account able to sign in to the CMS.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         authDomain.Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates a user with the same email already exists.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")

	// ErrSelfDelete indicates a user attempted to delete their own account.
	ErrSelfDelete = errors.Wrap(errors.ErrForbidden, "cannot delete own account")
)
