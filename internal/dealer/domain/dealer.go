// Package domain defines the core dealer domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/portalaudio/cms/internal/errors"
)

// Status represents the visibility state of a dealer.
type Status string

// Dealer statuses.
const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Valid reports whether the status is a known dealer status.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	}
	return false
}

// Dealer represents an authorized reseller shown on the dealer locator page.
type Dealer struct {
	ID        uuid.UUID
	Name      string
	Address   string
	City      string
	Region    string
	Phone     string
	Email     string
	Latitude  *float64
	Longitude *float64
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter narrows dealer listings.
type Filter struct {
	Region string
	Status Status
}

// Domain-specific errors for dealer operations.
var (
	// ErrDealerNotFound indicates the requested dealer does not exist.
	ErrDealerNotFound = errors.Wrap(errors.ErrNotFound, "dealer not found")
)
