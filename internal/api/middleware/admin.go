package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/phrazzld/aircnc-api/internal/api/shared"
	"github.com/phrazzld/aircnc-api/internal/domain"
	"github.com/phrazzld/aircnc-api/internal/store"
)

// RequireAdmin allows the request through only when the authenticated
// caller's stored user document has the admin role. The role is read from
// the store on every request, never from the token. It must run after
// AuthMiddleware.Authenticate.
func RequireAdmin(users store.UserStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetClaims(r)
			if !ok {
				shared.RespondWithErrorAndLog(w, r, http.StatusForbidden, MsgForbidden,
					fmt.Errorf("%w: no claims on request", domain.ErrForbidden),
					shared.WithElevatedLogLevel())
				return
			}

			user, err := users.GetByEmail(r.Context(), claims.Email)
			switch {
			case errors.Is(err, store.ErrUserNotFound):
				shared.RespondWithErrorAndLog(w, r, http.StatusForbidden, MsgForbidden,
					fmt.Errorf("%w: no stored user for caller", domain.ErrForbidden),
					shared.WithElevatedLogLevel())
				return
			case err != nil:
				shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
					"internal server error", err)
				return
			case !user.IsAdmin():
				shared.RespondWithErrorAndLog(w, r, http.StatusForbidden, MsgForbidden,
					fmt.Errorf("%w: caller is not an admin", domain.ErrForbidden),
					shared.WithElevatedLogLevel())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
