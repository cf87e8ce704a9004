// Package domain defines the core authentication domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the authorization level carried by a session.
type Role string

// Supported roles.
const (
	// RoleAdmin grants access to all management endpoints.
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is one of the supported roles.
func (r Role) Valid() bool {
	return r == RoleAdmin
}

// Principal is the verified identity extracted from a session token.
// The role is a snapshot taken at login time; changing a user's role does not
// affect sessions minted before the change.
type Principal struct {
	UserID uuid.UUID
	Role   Role
}

// Session is the result of a successful login: a signed token plus the
// metadata callers need to store and present it.
type Session struct {
	Token     string
	UserID    uuid.UUID
	Role      Role
	ExpiresAt time.Time
}
