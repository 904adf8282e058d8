package store

import (
	"context"

	"github.com/phrazzld/aircnc-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
// Users are keyed by email; there is no separate creation step.
type UserStore interface {
	// Upsert sets every field of profile on the user identified by email,
	// inserting the user when none exists. Concurrent upserts of the same
	// email are last-write-wins.
	Upsert(ctx context.Context, email string, profile domain.Document) (*domain.UpdateResult, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (domain.Document, error)

	// List returns every stored user, unfiltered.
	List(ctx context.Context) ([]domain.Document, error)
}
