package mongodb

import (
	"context"
	"log/slog"

	"github.com/phrazzld/aircnc-api/internal/domain"
	"github.com/phrazzld/aircnc-api/internal/platform/logger"
	"github.com/phrazzld/aircnc-api/internal/redact"
	"github.com/phrazzld/aircnc-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBookingStore implements the store.BookingStore interface
// on the bookings collection.
type MongoBookingStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// NewMongoBookingStore creates a new MongoDB implementation of the BookingStore interface.
// If logger is nil, a default logger will be used.
func NewMongoBookingStore(db *mongo.Database, logger *slog.Logger) *MongoBookingStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &MongoBookingStore{
		coll:   db.Collection(BookingsCollection),
		logger: logger.With(slog.String("component", "booking_store")),
	}
}

// Ensure MongoBookingStore implements store.BookingStore interface
var _ store.BookingStore = (*MongoBookingStore)(nil)

// Create implements store.BookingStore.Create
func (s *MongoBookingStore) Create(ctx context.Context, booking domain.Document) (*domain.InsertResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	res, err := s.coll.InsertOne(ctx, booking)
	if err != nil {
		log.Error("failed to insert booking", slog.String("error", redact.Error(err)))
		return nil, mapError("booking", "insert", err)
	}

	out := insertResult(res)
	log.Info("booking created", slog.String("booking_id", out.InsertedID))
	return out, nil
}

// List implements store.BookingStore.List
func (s *MongoBookingStore) List(ctx context.Context, guestEmail string) ([]domain.Document, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := bson.M{}
	if guestEmail != "" {
		query[domain.FieldGuestEmail] = guestEmail
	}

	cursor, err := s.coll.Find(ctx, query)
	if err != nil {
		log.Error("failed to list bookings", slog.String("error", redact.Error(err)))
		return nil, mapError("booking", "find", err)
	}

	bookings, err := decodeAll(ctx, cursor)
	if err != nil {
		log.Error("failed to read bookings", slog.String("error", redact.Error(err)))
		return nil, mapError("booking", "decode", err)
	}
	return bookings, nil
}

// Delete implements store.BookingStore.Delete
func (s *MongoBookingStore) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	oid, err := parseObjectID(id)
	if err != nil {
		log.Debug("rejected malformed booking id", slog.String("booking_id", id))
		return nil, err
	}

	res, err := s.coll.DeleteOne(ctx, bson.M{domain.FieldID: oid})
	if err != nil {
		log.Error("failed to delete booking",
			slog.String("error", redact.Error(err)),
			slog.String("booking_id", id))
		return nil, mapError("booking", "delete", err)
	}

	log.Info("booking deleted",
		slog.String("booking_id", id),
		slog.Int64("deleted", res.DeletedCount))
	return deleteResult(res), nil
}
