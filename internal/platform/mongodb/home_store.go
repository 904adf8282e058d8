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

// MongoHomeStore implements the store.HomeStore interface
// on the homes collection.
type MongoHomeStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// NewMongoHomeStore creates a new MongoDB implementation of the HomeStore interface.
// If logger is nil, a default logger will be used.
func NewMongoHomeStore(db *mongo.Database, logger *slog.Logger) *MongoHomeStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &MongoHomeStore{
		coll:   db.Collection(HomesCollection),
		logger: logger.With(slog.String("component", "home_store")),
	}
}

// Ensure MongoHomeStore implements store.HomeStore interface
var _ store.HomeStore = (*MongoHomeStore)(nil)

// homeQuery translates a HomeFilter into a query document.
func homeQuery(filter store.HomeFilter) bson.M {
	q := bson.M{}
	if filter.HostEmail != "" {
		q[domain.FieldHostEmail] = filter.HostEmail
	}
	if filter.Location != "" {
		q[domain.FieldLocation] = filter.Location
	}
	return q
}

// Create implements store.HomeStore.Create
func (s *MongoHomeStore) Create(ctx context.Context, home domain.Document) (*domain.InsertResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	res, err := s.coll.InsertOne(ctx, home)
	if err != nil {
		log.Error("failed to insert home", slog.String("error", redact.Error(err)))
		return nil, mapError("home", "insert", err)
	}

	out := insertResult(res)
	log.Info("home created", slog.String("home_id", out.InsertedID))
	return out, nil
}

// List implements store.HomeStore.List
func (s *MongoHomeStore) List(ctx context.Context, filter store.HomeFilter) ([]domain.Document, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cursor, err := s.coll.Find(ctx, homeQuery(filter))
	if err != nil {
		log.Error("failed to list homes", slog.String("error", redact.Error(err)))
		return nil, mapError("home", "find", err)
	}

	homes, err := decodeAll(ctx, cursor)
	if err != nil {
		log.Error("failed to read homes", slog.String("error", redact.Error(err)))
		return nil, mapError("home", "decode", err)
	}
	return homes, nil
}

// GetByID implements store.HomeStore.GetByID
func (s *MongoHomeStore) GetByID(ctx context.Context, id string) (domain.Document, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	oid, err := parseObjectID(id)
	if err != nil {
		log.Debug("rejected malformed home id", slog.String("home_id", id))
		return nil, err
	}

	raw, err := s.coll.FindOne(ctx, bson.M{domain.FieldID: oid}).Raw()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			log.Debug("home not found", slog.String("home_id", id))
			return nil, store.ErrHomeNotFound
		}
		log.Error("failed to find home",
			slog.String("error", redact.Error(err)),
			slog.String("home_id", id))
		return nil, mapError("home", "find", err)
	}

	doc, err := decodeDocument(raw)
	if err != nil {
		return nil, mapError("home", "decode", err)
	}
	return doc, nil
}

// UpdateFirst implements store.HomeStore.UpdateFirst
// The empty filter matches whichever document the server returns first.
func (s *MongoHomeStore) UpdateFirst(ctx context.Context, home domain.Document) (*domain.UpdateResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	res, err := s.coll.UpdateOne(ctx, bson.M{}, setDocument(home), options.Update().SetUpsert(true))
	if err != nil {
		log.Error("failed to update home", slog.String("error", redact.Error(err)))
		return nil, mapError("home", "update", err)
	}

	log.Info("home updated",
		slog.Int64("matched", res.MatchedCount),
		slog.Int64("modified", res.ModifiedCount),
		slog.Int64("upserted", res.UpsertedCount))
	return updateResult(res), nil
}

// Delete implements store.HomeStore.Delete
func (s *MongoHomeStore) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	oid, err := parseObjectID(id)
	if err != nil {
		log.Debug("rejected malformed home id", slog.String("home_id", id))
		return nil, err
	}

	res, err := s.coll.DeleteOne(ctx, bson.M{domain.FieldID: oid})
	if err != nil {
		log.Error("failed to delete home",
			slog.String("error", redact.Error(err)),
			slog.String("home_id", id))
		return nil, mapError("home", "delete", err)
	}

	log.Info("home deleted",
		slog.String("home_id", id),
		slog.Int64("deleted", res.DeletedCount))
	return deleteResult(res), nil
}
