package events

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	payload := BookingCreated{
		BookingID:  "65f1c0ffee0000000000abcd",
		GuestEmail: "guest@example.com",
	}

	event, err := NewEvent(TypeBookingCreated, payload)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, TypeBookingCreated, event.Type)
	assert.WithinDuration(t, time.Now(), event.CreatedAt, 2*time.Second)
	assert.JSONEq(t, `{"bookingId":"65f1c0ffee0000000000abcd","guestEmail":"guest@example.com"}`, string(event.Payload))

	var decoded BookingCreated
	require.NoError(t, event.UnmarshalPayload(&decoded))
	assert.Equal(t, payload, decoded)
}

func TestNewEventUnserializablePayload(t *testing.T) {
	_, err := NewEvent(TypeBookingCreated, make(chan int))
	assert.Error(t, err)
}

// MockEventHandler implements the EventHandler interface for testing
type MockEventHandler struct {
	LastEvent    *Event
	HandlerError error
	HandledCount int
}

// HandleEvent implements the EventHandler interface
func (h *MockEventHandler) HandleEvent(ctx context.Context, event *Event) error {
	h.LastEvent = event
	h.HandledCount++
	return h.HandlerError
}
