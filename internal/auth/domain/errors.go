package domain

import (
	"github.com/portalaudio/cms/internal/errors"
)

// Domain-specific errors for authentication operations.
var (
	// ErrInvalidCredentials indicates the email/password pair did not match.
	// The same error is returned whether the email is unknown or the password
	// is wrong, so responses do not reveal which accounts exist.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrSessionMalformed indicates the session token could not be parsed.
	ErrSessionMalformed = errors.Wrap(errors.ErrUnauthorized, "session token malformed")

	// ErrSessionExpired indicates the session token is past its expiration.
	ErrSessionExpired = errors.Wrap(errors.ErrUnauthorized, "session token expired")

	// ErrSessionSignature indicates the session token signature did not verify.
	ErrSessionSignature = errors.Wrap(errors.ErrUnauthorized, "session token signature invalid")
)
