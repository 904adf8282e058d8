package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/aircnc-api/internal/config"
	"github.com/phrazzld/aircnc-api/internal/domain"
	"github.com/phrazzld/aircnc-api/internal/platform/logger"
)

// Registered claim names set by the service.
const (
	claimExpiresAt = "exp"
	claimIssuedAt  = "iat"
	claimID        = "jti"
)

// minSecretLength is the shortest HMAC secret accepted.
const minSecretLength = 32

// hmacTokenService is an implementation of TokenService using HMAC-SHA256 signing.
type hmacTokenService struct {
	signingKey    []byte
	tokenLifetime time.Duration
	timeFunc      func() time.Time // Injectable for testing
}

// Ensure hmacTokenService implements TokenService interface
var _ TokenService = (*hmacTokenService)(nil)

// NewTokenService creates a new token service using HMAC-SHA256 signing.
func NewTokenService(cfg config.AuthConfig) (TokenService, error) {
	svc, err := newHMACTokenService(
		cfg.JWTSecret,
		time.Duration(cfg.TokenLifetimeMinutes)*time.Minute,
		time.Now,
	)
	if err != nil {
		return nil, err
	}
	return svc, nil
}

func newHMACTokenService(
	secret string,
	lifetime time.Duration,
	timeFunc func() time.Time,
) (*hmacTokenService, error) {
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("%w: jwt secret must be at least %d characters", ErrInvalidConfig, minSecretLength)
	}
	if lifetime <= 0 {
		return nil, fmt.Errorf("%w: token lifetime must be positive, got %s", ErrInvalidConfig, lifetime)
	}

	return &hmacTokenService{
		signingKey:    []byte(secret),
		tokenLifetime: lifetime,
		timeFunc:      timeFunc,
	}, nil
}

// GenerateToken creates a signed token whose claims are payload plus the
// registered claims.
func (s *hmacTokenService) GenerateToken(ctx context.Context, payload domain.Document) (string, error) {
	log := logger.FromContext(ctx)
	now := s.timeFunc()

	claims := make(jwt.MapClaims, len(payload)+3)
	for k, v := range payload {
		claims[k] = v
	}
	claims[claimIssuedAt] = jwt.NewNumericDate(now)
	claims[claimExpiresAt] = jwt.NewNumericDate(now.Add(s.tokenLifetime))
	claims[claimID] = uuid.NewString()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		log.Error("failed to sign token",
			"error", err,
			"signing_method", jwt.SigningMethodHS256.Name)
		return "", fmt.Errorf("failed to sign token with HMAC-SHA256: %w", err)
	}

	return signed, nil
}

// ValidateToken verifies a token and returns its claims.
func (s *hmacTokenService) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	log := logger.FromContext(ctx)

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.timeFunc),
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		parserOpts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug("token validation failed: token expired", "error", err)
			return nil, ErrExpiredToken
		}
		log.Debug("token validation failed",
			"error", err,
			"error_type", fmt.Sprintf("%T", err))
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		log.Debug("token validation failed: invalid claims")
		return nil, ErrInvalidToken
	}

	out := &Claims{Payload: make(domain.Document, len(claims))}
	for k, v := range claims {
		switch k {
		case claimExpiresAt, claimIssuedAt, claimID:
		default:
			out.Payload[k] = v
		}
	}
	out.Email = out.Payload.Email()
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		out.IssuedAt = iat.Time
	}
	out.ID, _ = claims[claimID].(string)

	log.Debug("token validated successfully",
		"token_id", out.ID,
		"expiry", out.ExpiresAt)

	return out, nil
}
