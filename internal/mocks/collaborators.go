package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/aircnc-api/internal/events"
	"github.com/phrazzld/aircnc-api/internal/service/notification"
	"github.com/phrazzld/aircnc-api/internal/service/payment"
)

// MockIntentService implements payment.IntentService for testing
type MockIntentService struct {
	CreateIntentFn func(ctx context.Context, price float64) (string, error)

	ClientSecret string
	Err          error

	// Prices records every price requested
	Prices []float64
}

var _ payment.IntentService = (*MockIntentService)(nil)

// CreateIntent implements the payment.IntentService interface
func (m *MockIntentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	m.Prices = append(m.Prices, price)
	if m.CreateIntentFn != nil {
		return m.CreateIntentFn(ctx, price)
	}
	return m.ClientSecret, m.Err
}

// MockEventEmitter implements events.EventEmitter and records emitted events
type MockEventEmitter struct {
	mu     sync.Mutex
	Events []*events.Event
	Err    error
}

var _ events.EventEmitter = (*MockEventEmitter)(nil)

// EmitEvent implements the events.EventEmitter interface
func (m *MockEventEmitter) EmitEvent(ctx context.Context, event *events.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, event)
	return m.Err
}

// Emitted returns a copy of the recorded events.
func (m *MockEventEmitter) Emitted() []*events.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*events.Event(nil), m.Events...)
}

// MockSender implements notification.Sender and records sent messages
type MockSender struct {
	mu       sync.Mutex
	Messages []notification.Message
	Err      error
}

var _ notification.Sender = (*MockSender)(nil)

// Send implements the notification.Sender interface
func (m *MockSender) Send(ctx context.Context, msg notification.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Messages = append(m.Messages, msg)
	return m.Err
}

// Sent returns a copy of the recorded messages.
func (m *MockSender) Sent() []notification.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]notification.Message(nil), m.Messages...)
}
