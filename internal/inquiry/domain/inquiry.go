// Package domain defines the core inquiry domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/portalaudio/cms/internal/errors"
)

// Status represents the handling state of an inquiry.
type Status string

// Inquiry statuses. New submissions always start as StatusNew.
const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
)

// Valid reports whether the status is a known inquiry status.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// Inquiry represents a contact-form submission from the public site.
type Inquiry struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Message   string
	ProductID *uuid.UUID
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter narrows inquiry listings.
type Filter struct {
	Status Status
}

// Domain-specific errors for inquiry operations.
var (
	// ErrInquiryNotFound indicates the requested inquiry does not exist.
	ErrInquiryNotFound = errors.Wrap(errors.ErrNotFound, "inquiry not found")
)
