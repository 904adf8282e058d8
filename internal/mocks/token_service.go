package mocks

import (
	"context"

	"github.com/phrazzld/aircnc-api/internal/domain"
	"github.com/phrazzld/aircnc-api/internal/service/auth"
)

// MockTokenService implements auth.TokenService for testing
type MockTokenService struct {
	// GenerateTokenFn allows test cases to mock the GenerateToken behavior
	GenerateTokenFn func(ctx context.Context, payload domain.Document) (string, error)

	// ValidateTokenFn allows test cases to mock the ValidateToken behavior
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Default values used when functions aren't explicitly defined
	Token       string
	Err         error
	ValidateErr error
	Claims      *auth.Claims

	// Payloads records every payload passed to GenerateToken
	Payloads []domain.Document
}

var _ auth.TokenService = (*MockTokenService)(nil)

// GenerateToken implements the auth.TokenService interface
func (m *MockTokenService) GenerateToken(ctx context.Context, payload domain.Document) (string, error) {
	m.Payloads = append(m.Payloads, payload)
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, payload)
	}
	return m.Token, m.Err
}

// ValidateToken implements the auth.TokenService interface
func (m *MockTokenService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}
