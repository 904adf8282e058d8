package auth

import "errors"

var (
	// ErrInvalidToken is returned for a token that is malformed, signed with
	// another key or uses an unexpected signing method.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken is returned for a well-formed token past its exp claim.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrInvalidConfig is returned by NewTokenService for an unusable secret or lifetime.
	ErrInvalidConfig = errors.New("invalid token service configuration")
)
