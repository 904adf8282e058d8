package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types published by the API.
const (
	// TypeBookingCreated is emitted after a booking has been stored.
	TypeBookingCreated = "booking.created"
)

// Event is a fact about something that already happened, such as a stored
// booking. Handlers react to it without the publisher knowing who they are.
type Event struct {
	ID        uuid.UUID       `json:"id"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// BookingCreated is the payload of a TypeBookingCreated event.
type BookingCreated struct {
	BookingID  string `json:"bookingId"`
	GuestEmail string `json:"guestEmail"`
}

// UnmarshalPayload decodes the event payload into v.
func (e *Event) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewEvent creates an Event of the given type with payload serialized as JSON.
func NewEvent(eventType string, payload interface{}) (*Event, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:        uuid.New(),
		Type:      eventType,
		Payload:   payloadBytes,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// EventHandler processes events delivered by an EventEmitter.
type EventHandler interface {
	// HandleEvent processes event. Handlers that do slow work should hand it
	// off and return promptly, since emitters call them in sequence.
	HandleEvent(ctx context.Context, event *Event) error
}

// EventEmitter publishes events to registered handlers.
type EventEmitter interface {
	EmitEvent(ctx context.Context, event *Event) error
}
