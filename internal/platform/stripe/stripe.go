// Package stripe implements payment.Gateway with the Stripe API.
package stripe

import (
	"context"
	"fmt"

	"github.com/phrazzld/aircnc-api/internal/service/payment"
	stripeapi "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// paymentMethodCard is the only payment method offered at checkout.
const paymentMethodCard = "card"

// Gateway implements payment.Gateway.
type Gateway struct {
	api *client.API
}

// Ensure Gateway implements payment.Gateway
var _ payment.Gateway = (*Gateway)(nil)

// NewGateway creates a Gateway authenticating with secretKey against the
// live Stripe API.
func NewGateway(secretKey string) *Gateway {
	return NewGatewayWithBackends(secretKey, nil)
}

// NewGatewayWithBackends creates a Gateway using custom backends, for
// pointing the client at a test server.
func NewGatewayWithBackends(secretKey string, backends *stripeapi.Backends) *Gateway {
	api := &client.API{}
	api.Init(secretKey, backends)
	return &Gateway{api: api}
}

// CreatePaymentIntent implements payment.Gateway.
func (g *Gateway) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripeapi.PaymentIntentParams{
		Amount:             stripeapi.Int64(amount),
		Currency:           stripeapi.String(currency),
		PaymentMethodTypes: stripeapi.StringSlice([]string{paymentMethodCard}),
	}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe create payment intent: %w", err)
	}
	return pi.ClientSecret, nil
}
