package store

import (
	"context"

	"github.com/phrazzld/aircnc-api/internal/domain"
)

// BookingStore defines the interface for booking persistence.
type BookingStore interface {
	// Create inserts booking verbatim and reports the generated identifier.
	Create(ctx context.Context, booking domain.Document) (*domain.InsertResult, error)

	// List returns the bookings whose guestEmail equals guestEmail, or every
	// booking when guestEmail is empty.
	List(ctx context.Context, guestEmail string) ([]domain.Document, error)

	// Delete removes the booking with the given identifier.
	// Returns ErrInvalidID for a malformed id; an unknown id deletes nothing.
	Delete(ctx context.Context, id string) (*domain.DeleteResult, error)
}

// Pinger reports whether the underlying store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
