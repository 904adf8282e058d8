package mongodb

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/aircnc-api/internal/domain"
	"github.com/phrazzld/aircnc-api/internal/platform/logger"
	"github.com/phrazzld/aircnc-api/internal/redact"
	"github.com/phrazzld/aircnc-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoUserStore implements the store.UserStore interface
// on the users collection.
type MongoUserStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// NewMongoUserStore creates a new MongoDB implementation of the UserStore interface.
// If logger is nil, a default logger will be used.
func NewMongoUserStore(db *mongo.Database, logger *slog.Logger) *MongoUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &MongoUserStore{
		coll:   db.Collection(UsersCollection),
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure MongoUserStore implements store.UserStore interface
var _ store.UserStore = (*MongoUserStore)(nil)

// Upsert implements store.UserStore.Upsert
func (s *MongoUserStore) Upsert(
	ctx context.Context,
	email string,
	profile domain.Document,
) (*domain.UpdateResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	res, err := s.coll.UpdateOne(
		ctx,
		bson.M{domain.FieldEmail: email},
		setDocument(profile),
		options.Update().SetUpsert(true),
	)
	if err != nil {
		log.Error("failed to upsert user", slog.String("error", redact.Error(err)))
		return nil, mapError("user", "upsert", err)
	}

	log.Debug("user upserted",
		slog.Int64("matched", res.MatchedCount),
		slog.Int64("upserted", res.UpsertedCount))
	return updateResult(res), nil
}

// GetByEmail implements store.UserStore.GetByEmail
// Returns store.ErrUserNotFound if no user has the given email.
func (s *MongoUserStore) GetByEmail(ctx context.Context, email string) (domain.Document, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	raw, err := s.coll.FindOne(ctx, bson.M{domain.FieldEmail: email}).Raw()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			log.Debug("user not found")
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to find user", slog.String("error", redact.Error(err)))
		return nil, mapError("user", "find", err)
	}

	doc, err := decodeDocument(raw)
	if err != nil {
		return nil, mapError("user", "decode", err)
	}
	return doc, nil
}

// List implements store.UserStore.List
func (s *MongoUserStore) List(ctx context.Context) ([]domain.Document, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		log.Error("failed to list users", slog.String("error", redact.Error(err)))
		return nil, mapError("user", "find", err)
	}

	users, err := decodeAll(ctx, cursor)
	if err != nil {
		log.Error("failed to read users", slog.String("error", redact.Error(err)))
		return nil, mapError("user", "decode", err)
	}
	return users, nil
}
