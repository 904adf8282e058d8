package middleware

import (
	"net/http"
	"strings"

	"github.com/phrazzld/aircnc-api/internal/api/shared"
	"github.com/phrazzld/aircnc-api/internal/domain"
	"github.com/phrazzld/aircnc-api/internal/service/auth"
)

// Messages returned to clients on rejected credentials.
const (
	MsgUnauthorized = "unauthorized access"
	MsgForbidden    = "forbidden access"
)

const bearerScheme = "Bearer"

// AuthMiddleware provides bearer token authentication for routes.
type AuthMiddleware struct {
	tokens auth.TokenService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokens auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
	}
}

// Authenticate verifies the bearer token in the Authorization header and
// stores its claims in the request context.
//
// A request without the header is rejected with 401. A header that is not
// of the form "Bearer <token>", or carries a token that fails verification,
// is rejected with 403.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, MsgUnauthorized, domain.ErrUnauthorized)
			return
		}

		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || scheme != bearerScheme || token == "" {
			shared.RespondWithErrorAndLog(w, r, http.StatusForbidden, MsgForbidden,
				auth.ErrInvalidToken, shared.WithElevatedLogLevel())
			return
		}

		claims, err := m.tokens.ValidateToken(r.Context(), token)
		if err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusForbidden, MsgForbidden, err,
				shared.WithElevatedLogLevel())
			return
		}

		next.ServeHTTP(w, r.WithContext(shared.WithClaims(r.Context(), claims)))
	})
}

// GetClaims extracts the verified claims from the request context.
// Returns the claims and a boolean indicating if they were found.
func GetClaims(r *http.Request) (*auth.Claims, bool) {
	return shared.GetClaims(r.Context())
}
