// Package mocks provides centralized mock implementations for testing.
//
// Each mock implements one application interface with function fields for
// per-test behavior and plain fields for the common fixed-response case:
//
//	tokens := &mocks.MockTokenService{Claims: &auth.Claims{Email: "guest@example.com"}}
//	mw := middleware.NewAuthMiddleware(tokens)
//
// Mocks record their calls so tests can assert on what the code under test
// sent to its collaborators.
package mocks
