// Package auth issues and verifies the bearer tokens handed to users when
// they save their profile.
package auth

import (
	"context"
	"time"

	"github.com/phrazzld/aircnc-api/internal/domain"
)

// TokenService defines operations for managing authentication tokens.
type TokenService interface {
	// GenerateToken signs a token embedding payload as its claims.
	// Registered claims (exp, iat, jti) are added by the service and
	// override any payload fields of the same name.
	GenerateToken(ctx context.Context, payload domain.Document) (string, error)

	// ValidateToken verifies the signature and expiry of tokenString and
	// returns its claims. Returns ErrExpiredToken or ErrInvalidToken.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the decoded content of a valid token.
type Claims struct {
	// Payload holds the signed payload without the registered claims.
	Payload domain.Document

	// Email is payload.email, the identity of the caller.
	Email string

	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
