package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/aircnc-api/internal/api/shared"
	"github.com/phrazzld/aircnc-api/internal/service/payment"
)

// PaymentHandler handles payment intent creation.
type PaymentHandler struct {
	intents payment.IntentService
	logger  *slog.Logger
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(intents payment.IntentService, logger *slog.Logger) *PaymentHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PaymentHandler")
	}

	return &PaymentHandler{
		intents: intents,
		logger:  logger.With(slog.String("component", "payment_handler")),
	}
}

// CreatePaymentIntent handles POST /create-payment-intent.
func (h *PaymentHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req PaymentIntentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, payment.ErrInvalidPrice, "")
		return
	}

	secret, err := h.intents.CreateIntent(r.Context(), req.Price)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PaymentIntentResponse{ClientSecret: secret})
}
