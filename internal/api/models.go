package api

import (
	"github.com/phrazzld/aircnc-api/internal/domain"
)

// Request and response bodies with a fixed shape. Listings, users and
// bookings are schema-less and travel as domain.Document.

// SaveUserResponse is returned when a user profile is saved.
type SaveUserResponse struct {
	Result *domain.UpdateResult `json:"result"`

	// Token is a bearer token embedding the saved profile.
	Token string `json:"token"`
}

// PaymentIntentRequest defines the payload for creating a payment intent.
type PaymentIntentRequest struct {
	// Price is in major currency units, e.g. 12.5 for $12.50.
	Price float64 `json:"price" validate:"gt=0"`
}

// PaymentIntentResponse carries the secret the client uses to confirm the
// payment with the provider.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// HealthResponse reports service health.
type HealthResponse struct {
	Status string `json:"status"`
}
