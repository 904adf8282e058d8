package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/aircnc-api/internal/api/shared"
	"github.com/phrazzld/aircnc-api/internal/events"
	"github.com/phrazzld/aircnc-api/internal/platform/logger"
	"github.com/phrazzld/aircnc-api/internal/redact"
	"github.com/phrazzld/aircnc-api/internal/store"
)

// BookingHandler handles booking endpoints.
type BookingHandler struct {
	bookings store.BookingStore
	emitter  events.EventEmitter
	logger   *slog.Logger
}

// NewBookingHandler creates a new BookingHandler. Stored bookings are
// announced on emitter as events.TypeBookingCreated.
func NewBookingHandler(
	bookings store.BookingStore,
	emitter events.EventEmitter,
	logger *slog.Logger,
) *BookingHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for BookingHandler")
	}
	if emitter == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("emitter cannot be nil for BookingHandler")
	}

	return &BookingHandler{
		bookings: bookings,
		emitter:  emitter,
		logger:   logger.With(slog.String("component", "booking_handler")),
	}
}

// CreateBooking handles POST /bookings. The insert result is returned
// whatever happens to the confirmation.
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := shared.DecodeDocument(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	result, err := h.bookings.Create(r.Context(), booking)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log := logger.FromContextOrDefault(r.Context(), h.logger).With(
		slog.String("booking_id", result.InsertedID),
		slog.String("guest_email", redact.Email(booking.GuestEmail())),
	)

	event, err := events.NewEvent(events.TypeBookingCreated, events.BookingCreated{
		BookingID:  result.InsertedID,
		GuestEmail: booking.GuestEmail(),
	})
	if err != nil {
		log.Error("failed to build booking event", slog.String("error", redact.Error(err)))
	} else if err := h.emitter.EmitEvent(r.Context(), event); err != nil {
		log.Error("failed to emit booking event", slog.String("error", redact.Error(err)))
	} else {
		log.Debug("booking created")
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// ListBookings handles GET /bookings?email=X.
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookings.List(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, bookings)
}

// DeleteBooking handles DELETE /bookings/{id}.
func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id, err := getPathParam(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	result, err := h.bookings.Delete(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
