package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/aircnc-api/internal/domain"
)

// getPathParam extracts a required, non-blank URL path parameter.
func getPathParam(r *http.Request, paramName string) (string, error) {
	value := strings.TrimSpace(chi.URLParam(r, paramName))
	if value == "" {
		return "", domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}
	return value, nil
}

// isEmailKey reports whether a path key names a host by email rather than a
// listing by id. Store identifiers never contain '@'.
func isEmailKey(key string) bool {
	return strings.Contains(key, "@")
}
