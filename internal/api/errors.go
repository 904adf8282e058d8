package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/phrazzld/aircnc-api/internal/api/shared"
	"github.com/phrazzld/aircnc-api/internal/domain"
	"github.com/phrazzld/aircnc-api/internal/service/auth"
	"github.com/phrazzld/aircnc-api/internal/service/payment"
	"github.com/phrazzld/aircnc-api/internal/store"
)

// isMalformedBody reports whether err came from decoding a request body.
func isMalformedBody(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) ||
		errors.As(err, &typeErr) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var maxBytesErr *http.MaxBytesError

	switch {
	// Authentication errors
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return http.StatusForbidden

	// Bad request errors
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidID),
		isMalformedBody(err):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Upstream errors
	case errors.Is(err, payment.ErrGatewayFailure):
		return http.StatusBadGateway
	case errors.Is(err, store.ErrUnavailable):
		return http.StatusServiceUnavailable

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "an unexpected error occurred"
	}

	var validationErr *domain.ValidationError
	var maxBytesErr *http.MaxBytesError

	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return "unauthorized access"

	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return "forbidden access"

	case errors.As(err, &validationErr):
		return validationErr.Error()

	case errors.Is(err, payment.ErrInvalidPrice):
		return "price must be greater than zero"

	case errors.Is(err, store.ErrInvalidID):
		return "invalid id"

	case errors.As(err, &maxBytesErr):
		return "request body too large"

	case errors.Is(err, domain.ErrValidation),
		isMalformedBody(err):
		return "invalid request body"

	case errors.Is(err, store.ErrUserNotFound):
		return "user not found"

	case errors.Is(err, store.ErrHomeNotFound):
		return "home not found"

	case errors.Is(err, payment.ErrGatewayFailure):
		return "payment provider error"

	case errors.Is(err, store.ErrUnavailable):
		return "service unavailable"

	default:
		return "internal server error"
	}
}

// HandleAPIError writes the error response for err. When message is empty
// the safe message for err is used.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := MapErrorToStatusCode(err)
	if message == "" {
		message = GetSafeErrorMessage(err)
	}

	var opts []shared.ResponseOption
	if status == http.StatusForbidden {
		opts = append(opts, shared.WithElevatedLogLevel())
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}
