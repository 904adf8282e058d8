// Package payment creates payment intents for bookings. The card details
// never pass through this service: clients confirm the intent directly with
// the payment provider using the returned client secret.
package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/phrazzld/aircnc-api/internal/domain"
	"github.com/phrazzld/aircnc-api/internal/platform/logger"
	"github.com/phrazzld/aircnc-api/internal/redact"
)

var (
	// ErrInvalidPrice is returned for a price that is not a positive amount.
	ErrInvalidPrice = fmt.Errorf("%w: price must be greater than zero", domain.ErrValidation)

	// ErrGatewayFailure wraps any error reported by the payment provider.
	ErrGatewayFailure = errors.New("payment gateway failure")
)

// Gateway is the payment provider.
type Gateway interface {
	// CreatePaymentIntent requests an intent for amount minor units of
	// currency, payable by card, and returns its client secret.
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error)
}

// IntentService defines the payment operations offered to the API.
type IntentService interface {
	// CreateIntent opens a payment intent for price, expressed in major
	// currency units, and returns the client secret.
	CreateIntent(ctx context.Context, price float64) (string, error)
}

// Service implements IntentService on top of a Gateway.
type Service struct {
	gateway  Gateway
	currency string
	logger   *slog.Logger
}

// Ensure Service implements IntentService
var _ IntentService = (*Service)(nil)

// NewService creates a Service charging in currency.
func NewService(gateway Gateway, currency string, logger *slog.Logger) *Service {
	if gateway == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("gateway cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		gateway:  gateway,
		currency: currency,
		logger:   logger.With(slog.String("component", "payment_service")),
	}
}

// ToMinorUnits converts a price in major units to the smallest currency
// unit, truncating toward zero: 10.999 becomes 1099.
func ToMinorUnits(price float64) int64 {
	return int64(price * 100)
}

// CreateIntent implements IntentService.
func (s *Service) CreateIntent(ctx context.Context, price float64) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return "", ErrInvalidPrice
	}
	amount := ToMinorUnits(price)
	if amount <= 0 {
		return "", ErrInvalidPrice
	}

	secret, err := s.gateway.CreatePaymentIntent(ctx, amount, s.currency)
	if err != nil {
		log.Error("failed to create payment intent",
			slog.Int64("amount", amount),
			slog.String("currency", s.currency),
			slog.String("error", redact.Error(err)))
		return "", fmt.Errorf("%w: %w", ErrGatewayFailure, err)
	}

	log.Info("payment intent created",
		slog.Int64("amount", amount),
		slog.String("currency", s.currency))
	return secret, nil
}
