package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentAccessors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		doc        Document
		email      string
		guestEmail string
		hostEmail  string
		isAdmin    bool
	}{
		{
			name:    "admin user",
			doc:     Document{"email": "admin@example.com", "role": "admin"},
			email:   "admin@example.com",
			isAdmin: true,
		},
		{
			name:  "regular user",
			doc:   Document{"email": "guest@example.com", "role": "guest"},
			email: "guest@example.com",
		},
		{
			name:       "booking",
			doc:        Document{"guestEmail": "guest@example.com", "price": 120.5},
			guestEmail: "guest@example.com",
		},
		{
			name:      "home with nested map host",
			doc:       Document{"location": "Dhaka", "host": map[string]any{"email": "host@example.com"}},
			hostEmail: "host@example.com",
		},
		{
			name:      "home with document host",
			doc:       Document{"host": Document{"email": "host@example.com"}},
			hostEmail: "host@example.com",
		},
		{
			name: "non-string fields are ignored",
			doc:  Document{"email": 42, "role": true, "host": "not-an-object"},
		},
		{
			name: "empty document",
			doc:  Document{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.email, tt.doc.Email())
			assert.Equal(t, tt.guestEmail, tt.doc.GuestEmail())
			assert.Equal(t, tt.hostEmail, tt.doc.HostEmail())
			assert.Equal(t, tt.isAdmin, tt.doc.IsAdmin())
		})
	}
}

func TestDocumentWithout(t *testing.T) {
	t.Parallel()

	doc := Document{"_id": "abc", "title": "Loft", "location": "Lisbon"}

	out := doc.Without(FieldID, "missing")

	assert.Equal(t, Document{"title": "Loft", "location": "Lisbon"}, out)
	assert.Contains(t, doc, FieldID, "original document must not be modified")
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	errBadFormat := errors.New("bad format")
	err := NewValidationError("id", "has invalid format", errBadFormat)

	assert.Equal(t, "id has invalid format", err.Error())
	assert.True(t, errors.Is(err, errBadFormat))
	assert.False(t, errors.Is(err, ErrValidation))
}
