package shared

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/aircnc-api/internal/service/auth"
)

// Key type for context values
type ContextKey string

// Context keys for various values
const (
	// ClaimsContextKey is the context key for the verified token claims
	ClaimsContextKey ContextKey = "claims"

	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"
)

// SetTraceID adds a new random trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, uuid.NewString())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// WithClaims returns a copy of ctx carrying claims.
func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, ClaimsContextKey, claims)
}

// GetClaims retrieves the verified claims stored by the auth middleware.
func GetClaims(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*auth.Claims)
	return claims, ok && claims != nil
}
