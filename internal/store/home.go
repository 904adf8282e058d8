package store

import (
	"context"

	"github.com/phrazzld/aircnc-api/internal/domain"
)

// HomeFilter narrows a listing query. Zero-value fields are not applied.
type HomeFilter struct {
	// HostEmail matches host.email exactly.
	HostEmail string
	// Location matches location exactly.
	Location string
}

// HomeStore defines the interface for listing persistence.
type HomeStore interface {
	// Create inserts home verbatim and reports the generated identifier.
	Create(ctx context.Context, home domain.Document) (*domain.InsertResult, error)

	// List returns the listings matching filter; an empty filter returns all.
	List(ctx context.Context, filter HomeFilter) ([]domain.Document, error)

	// GetByID retrieves one listing by its store identifier.
	// Returns ErrInvalidID for a malformed id and ErrHomeNotFound if absent.
	GetByID(ctx context.Context, id string) (domain.Document, error)

	// UpdateFirst sets the fields of home on whichever listing the store
	// matches first with an empty filter, inserting when the collection is
	// empty. It does not target a specific listing.
	UpdateFirst(ctx context.Context, home domain.Document) (*domain.UpdateResult, error)

	// Delete removes the listing with the given identifier.
	// Returns ErrInvalidID for a malformed id; an unknown id deletes nothing.
	Delete(ctx context.Context, id string) (*domain.DeleteResult, error)
}
