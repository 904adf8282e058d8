package notification

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/phrazzld/aircnc-api/internal/events"
	"github.com/phrazzld/aircnc-api/internal/platform/logger"
	"github.com/phrazzld/aircnc-api/internal/redact"
)

// Dispatcher sends messages in the background. Each Dispatch call attempts
// delivery exactly once; failures are logged and never reported to the
// caller.
type Dispatcher struct {
	sender Sender
	logger *slog.Logger

	// wg tracks in-flight sends for clean shutdown
	wg sync.WaitGroup
}

// Ensure Dispatcher implements events.EventHandler
var _ events.EventHandler = (*Dispatcher)(nil)

// NewDispatcher creates a Dispatcher delivering through sender.
func NewDispatcher(sender Sender, logger *slog.Logger) *Dispatcher {
	if sender == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("sender cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		sender: sender,
		logger: logger.With(slog.String("component", "notification_dispatcher")),
	}
}

// Dispatch sends msg on a new goroutine and returns immediately. The send
// keeps the values of ctx but not its cancellation, so it outlives the
// request that triggered it.
func (d *Dispatcher) Dispatch(ctx context.Context, msg Message) {
	log := logger.FromContextOrDefault(ctx, d.logger)
	sendCtx := context.WithoutCancel(ctx)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		if err := d.sender.Send(sendCtx, msg); err != nil {
			log.Error("failed to send notification",
				slog.String("subject", msg.Subject),
				slog.String("to", redact.Email(msg.To)),
				slog.String("error", redact.Error(err)))
			return
		}
		log.Info("notification sent",
			slog.String("subject", msg.Subject),
			slog.String("to", redact.Email(msg.To)))
	}()
}

// HandleEvent implements events.EventHandler. A booking.created event
// dispatches the booking confirmation; other event types are ignored.
func (d *Dispatcher) HandleEvent(ctx context.Context, event *events.Event) error {
	if event.Type != events.TypeBookingCreated {
		return nil
	}

	var payload events.BookingCreated
	if err := event.UnmarshalPayload(&payload); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", event.Type, err)
	}

	d.Dispatch(ctx, BookingConfirmation(payload.GuestEmail, payload.BookingID))
	return nil
}

// Wait blocks until every dispatched send has finished or ctx is done,
// whichever comes first.
func (d *Dispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for notifications: %w", ctx.Err())
	}
}
