package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/phrazzld/aircnc-api/internal/config"
	"github.com/phrazzld/aircnc-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret  = "test-secret-that-is-long-enough-for-testing"
	wrongSecret = "wrong-secret-that-is-long-enough-for-testing"
)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestNewTokenService(t *testing.T) {
	t.Parallel()

	t.Run("valid config", func(t *testing.T) {
		svc, err := NewTokenService(config.AuthConfig{
			JWTSecret:            testSecret,
			TokenLifetimeMinutes: 1440,
		})
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})

	t.Run("short secret", func(t *testing.T) {
		_, err := NewTokenService(config.AuthConfig{
			JWTSecret:            "too-short",
			TokenLifetimeMinutes: 1440,
		})
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.ErrorContains(t, err, "at least 32 characters")
	})

	t.Run("non-positive lifetime", func(t *testing.T) {
		_, err := NewTokenService(config.AuthConfig{JWTSecret: testSecret})
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.ErrorContains(t, err, "token lifetime must be positive")
	})
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc, err := newHMACTokenService(testSecret, 24*time.Hour, fixedClock(fixedTime))
	require.NoError(t, err)

	payload := domain.Document{
		"email": "guest@example.com",
		"name":  "Guest",
		"exp":   "attacker supplied",
	}

	token, err := svc.GenerateToken(context.Background(), payload)
	require.NoError(t, err)
	require.Len(t, strings.Split(token, "."), 3)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, "guest@example.com", claims.Email)
	assert.Equal(t, "Guest", claims.Payload.String("name"))
	assert.NotContains(t, claims.Payload, "exp")
	assert.NotContains(t, claims.Payload, "jti")
	assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, fixedTime.Add(24*time.Hour).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, "attacker supplied", payload["exp"], "payload must not be mutated")
}

func TestGenerateTokenUniqueIDs(t *testing.T) {
	t.Parallel()

	svc, err := newHMACTokenService(testSecret, time.Hour, time.Now)
	require.NoError(t, err)

	payload := domain.Document{"email": "guest@example.com"}
	first, err := svc.GenerateToken(context.Background(), payload)
	require.NoError(t, err)
	second, err := svc.GenerateToken(context.Background(), payload)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	lifetime := time.Hour
	payload := domain.Document{"email": "guest@example.com"}

	tests := []struct {
		name      string
		setupFunc func(t *testing.T) (*hmacTokenService, string)
		wantErr   error
	}{
		{
			name: "valid token",
			setupFunc: func(t *testing.T) (*hmacTokenService, string) {
				svc, err := newHMACTokenService(testSecret, lifetime, fixedClock(fixedTime))
				require.NoError(t, err)
				token, err := svc.GenerateToken(context.Background(), payload)
				require.NoError(t, err)
				return svc, token
			},
		},
		{
			name: "expired token",
			setupFunc: func(t *testing.T) (*hmacTokenService, string) {
				gen, err := newHMACTokenService(testSecret, lifetime, fixedClock(fixedTime))
				require.NoError(t, err)
				token, err := gen.GenerateToken(context.Background(), payload)
				require.NoError(t, err)

				later, err := newHMACTokenService(testSecret, lifetime, fixedClock(fixedTime.Add(2*lifetime)))
				require.NoError(t, err)
				return later, token
			},
			wantErr: ErrExpiredToken,
		},
		{
			name: "wrong secret",
			setupFunc: func(t *testing.T) (*hmacTokenService, string) {
				gen, err := newHMACTokenService(wrongSecret, lifetime, fixedClock(fixedTime))
				require.NoError(t, err)
				token, err := gen.GenerateToken(context.Background(), payload)
				require.NoError(t, err)

				svc, err := newHMACTokenService(testSecret, lifetime, fixedClock(fixedTime))
				require.NoError(t, err)
				return svc, token
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "malformed token",
			setupFunc: func(t *testing.T) (*hmacTokenService, string) {
				svc, err := newHMACTokenService(testSecret, lifetime, fixedClock(fixedTime))
				require.NoError(t, err)
				return svc, "not.a.token"
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "missing expiry",
			setupFunc: func(t *testing.T) (*hmacTokenService, string) {
				svc, err := newHMACTokenService(testSecret, lifetime, fixedClock(fixedTime))
				require.NoError(t, err)
				token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
					"email": "guest@example.com",
				}).SignedString([]byte(testSecret))
				require.NoError(t, err)
				return svc, token
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "unexpected signing method",
			setupFunc: func(t *testing.T) (*hmacTokenService, string) {
				svc, err := newHMACTokenService(testSecret, lifetime, fixedClock(fixedTime))
				require.NoError(t, err)
				token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
					"email": "guest@example.com",
					"exp":   fixedTime.Add(lifetime).Unix(),
				}).SignedString([]byte(testSecret))
				require.NoError(t, err)
				return svc, token
			},
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, token := tt.setupFunc(t)

			claims, err := svc.ValidateToken(context.Background(), token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "guest@example.com", claims.Email)
		})
	}
}
