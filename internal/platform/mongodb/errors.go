package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/phrazzld/aircnc-api/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// mapError maps a driver error to a store error for the given entity and
// operation. Connectivity failures additionally wrap store.ErrUnavailable so
// callers can tell them apart from rejected writes.
func mapError(entity, operation string, err error) error {
	if err == nil {
		return nil
	}

	if mongo.IsNetworkError(err) ||
		mongo.IsTimeout(err) ||
		errors.Is(err, mongo.ErrClientDisconnected) ||
		errors.Is(err, context.DeadlineExceeded) {
		return store.NewStoreError(entity, operation, "database unreachable",
			fmt.Errorf("%w: %w", store.ErrUnavailable, err))
	}

	return store.NewStoreError(entity, operation, "database operation failed", err)
}

// parseObjectID converts a hex identifier from a URL into an ObjectID.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", store.ErrInvalidID, id)
	}
	return oid, nil
}
