package mongodb

import (
	"context"
	"fmt"

	"github.com/phrazzld/aircnc-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// decodeDocument converts a raw BSON document into a domain.Document.
// Embedded documents decode as maps rather than ordered key/value slices so
// they serialize to JSON as objects.
func decodeDocument(raw bson.Raw) (domain.Document, error) {
	dec, err := bson.NewDecoder(bsonrw.NewBSONDocumentReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	dec.DefaultDocumentM()

	var m bson.M
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}

	return normalize(m).(domain.Document), nil
}

// normalize rewrites the driver's container types into plain Go values.
func normalize(v any) any {
	switch val := v.(type) {
	case primitive.M:
		doc := make(domain.Document, len(val))
		for k, item := range val {
			doc[k] = normalize(item)
		}
		return doc
	case primitive.D:
		doc := make(domain.Document, len(val))
		for _, e := range val {
			doc[e.Key] = normalize(e.Value)
		}
		return doc
	case primitive.A:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}
		return out
	default:
		return v
	}
}

// decodeAll drains cursor into documents. The result is never nil so an
// empty collection serializes as [] rather than null.
func decodeAll(ctx context.Context, cursor *mongo.Cursor) ([]domain.Document, error) {
	defer func() { _ = cursor.Close(ctx) }()

	docs := make([]domain.Document, 0)
	for cursor.Next(ctx) {
		doc, err := decodeDocument(cursor.Current)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}

// idString renders a generated identifier as a string. ObjectIDs become hex.
func idString(id any) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// setDocument builds a $set update from doc. _id is immutable in MongoDB
// and is dropped from the update.
func setDocument(doc domain.Document) bson.M {
	return bson.M{"$set": doc.Without(domain.FieldID)}
}

func insertResult(res *mongo.InsertOneResult) *domain.InsertResult {
	return &domain.InsertResult{
		Acknowledged: true,
		InsertedID:   idString(res.InsertedID),
	}
}

func updateResult(res *mongo.UpdateResult) *domain.UpdateResult {
	out := &domain.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if res.UpsertedID != nil {
		id := idString(res.UpsertedID)
		out.UpsertedID = &id
	}
	return out
}

func deleteResult(res *mongo.DeleteResult) *domain.DeleteResult {
	return &domain.DeleteResult{
		Acknowledged: true,
		DeletedCount: res.DeletedCount,
	}
}
