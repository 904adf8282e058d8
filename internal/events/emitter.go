package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/phrazzld/aircnc-api/internal/platform/logger"
)

// InMemoryEventEmitter delivers events synchronously to handlers registered
// in the same process.
type InMemoryEventEmitter struct {
	handlers []EventHandler
	mu       sync.RWMutex
	logger   *slog.Logger
}

// NewInMemoryEventEmitter creates a new instance of InMemoryEventEmitter.
func NewInMemoryEventEmitter(logger *slog.Logger) *InMemoryEventEmitter {
	return &InMemoryEventEmitter{
		handlers: make([]EventHandler, 0),
		logger:   logger.With("component", "event_emitter"),
	}
}

// RegisterHandler subscribes handler to every subsequently emitted event.
func (e *InMemoryEventEmitter) RegisterHandler(handler EventHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers = append(e.handlers, handler)
	e.logger.Debug("registered new event handler", "handler_count", len(e.handlers))
}

// EmitEvent delivers event to every registered handler in registration order.
// A failing handler does not stop delivery; the first error is returned.
func (e *InMemoryEventEmitter) EmitEvent(ctx context.Context, event *Event) error {
	if event == nil {
		return fmt.Errorf("cannot emit nil event")
	}
	log := logger.FromContextOrDefault(ctx, e.logger)

	e.mu.RLock()
	handlers := make([]EventHandler, len(e.handlers))
	copy(handlers, e.handlers)
	e.mu.RUnlock()

	if len(handlers) == 0 {
		log.Warn("no handlers registered for event",
			"event_id", event.ID,
			"event_type", event.Type)
		return nil
	}

	var firstErr error
	for i, handler := range handlers {
		if err := handler.HandleEvent(ctx, event); err != nil {
			log.Error("handler failed to process event",
				"error", err,
				"handler_index", i,
				"event_id", event.ID,
				"event_type", event.Type)
			if firstErr == nil {
				firstErr = fmt.Errorf("event %s: %w", event.Type, err)
			}
		}
	}

	return firstErr
}
