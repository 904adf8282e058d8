package mongodb

import (
	"errors"
	"testing"

	"github.com/phrazzld/aircnc-api/internal/domain"
	"github.com/phrazzld/aircnc-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestDecodeDocument(t *testing.T) {
	t.Parallel()

	oid := primitive.NewObjectID()
	raw, err := bson.Marshal(bson.D{
		{Key: "_id", Value: oid},
		{Key: "location", Value: "Dhaka"},
		{Key: "host", Value: bson.D{{Key: "email", Value: "host@example.com"}}},
		{Key: "tags", Value: bson.A{"wifi", bson.D{{Key: "pool", Value: true}}}},
	})
	require.NoError(t, err)

	doc, err := decodeDocument(raw)
	require.NoError(t, err)

	assert.Equal(t, oid, doc[domain.FieldID])
	assert.Equal(t, "Dhaka", doc.String(domain.FieldLocation))
	assert.Equal(t, "host@example.com", doc.HostEmail())

	host, ok := doc["host"].(domain.Document)
	require.True(t, ok, "embedded document should decode as a map")
	assert.Equal(t, "host@example.com", host.Email())

	tags, ok := doc["tags"].([]any)
	require.True(t, ok, "array should decode as a slice")
	require.Len(t, tags, 2)
	assert.Equal(t, "wifi", tags[0])
	assert.Equal(t, domain.Document{"pool": true}, tags[1])
}

func TestIDString(t *testing.T) {
	t.Parallel()

	oid := primitive.NewObjectID()

	assert.Equal(t, oid.Hex(), idString(oid))
	assert.Equal(t, "custom-id", idString("custom-id"))
	assert.Equal(t, "", idString(nil))
	assert.Equal(t, "42", idString(int32(42)))
}

func TestSetDocument(t *testing.T) {
	t.Parallel()

	doc := domain.Document{"_id": "abc", "title": "Cabin"}
	update := setDocument(doc)

	assert.Equal(t, bson.M{"$set": domain.Document{"title": "Cabin"}}, update)
	assert.Contains(t, doc, "_id", "input document must not be mutated")
}

func TestHomeQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filter   store.HomeFilter
		expected bson.M
	}{
		{
			name:     "empty filter",
			filter:   store.HomeFilter{},
			expected: bson.M{},
		},
		{
			name:     "host email",
			filter:   store.HomeFilter{HostEmail: "host@example.com"},
			expected: bson.M{"host.email": "host@example.com"},
		},
		{
			name:     "location",
			filter:   store.HomeFilter{Location: "Sylhet"},
			expected: bson.M{"location": "Sylhet"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, homeQuery(tt.filter))
		})
	}
}

func TestUpdateResult(t *testing.T) {
	t.Parallel()

	t.Run("matched existing document", func(t *testing.T) {
		res := updateResult(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1})
		assert.True(t, res.Acknowledged)
		assert.Equal(t, int64(1), res.MatchedCount)
		assert.Nil(t, res.UpsertedID)
	})

	t.Run("upserted new document", func(t *testing.T) {
		oid := primitive.NewObjectID()
		res := updateResult(&mongo.UpdateResult{UpsertedCount: 1, UpsertedID: oid})
		require.NotNil(t, res.UpsertedID)
		assert.Equal(t, oid.Hex(), *res.UpsertedID)
		assert.Equal(t, int64(1), res.UpsertedCount)
	})
}

func TestParseObjectID(t *testing.T) {
	t.Parallel()

	oid := primitive.NewObjectID()
	parsed, err := parseObjectID(oid.Hex())
	require.NoError(t, err)
	assert.Equal(t, oid, parsed)

	_, err = parseObjectID("not-an-id")
	assert.True(t, errors.Is(err, store.ErrInvalidID))
}

func TestMapError(t *testing.T) {
	t.Parallel()

	assert.Nil(t, mapError("home", "find", nil))

	err := mapError("home", "find", mongo.ErrClientDisconnected)
	assert.True(t, errors.Is(err, store.ErrUnavailable))
	assert.True(t, errors.Is(err, mongo.ErrClientDisconnected))

	err = mapError("home", "insert", errors.New("write rejected"))
	var storeErr *store.StoreError
	require.True(t, errors.As(err, &storeErr))
	assert.Equal(t, "home", storeErr.Entity)
	assert.Equal(t, "insert", storeErr.Operation)
	assert.False(t, errors.Is(err, store.ErrUnavailable))
}
