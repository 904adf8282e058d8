package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/aircnc-api/internal/api/shared"
	"github.com/phrazzld/aircnc-api/internal/platform/logger"
	"github.com/phrazzld/aircnc-api/internal/redact"
	"github.com/phrazzld/aircnc-api/internal/service/auth"
	"github.com/phrazzld/aircnc-api/internal/store"
)

// UserHandler handles user profile endpoints.
type UserHandler struct {
	users  store.UserStore
	tokens auth.TokenService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users store.UserStore, tokens auth.TokenService, logger *slog.Logger) *UserHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for UserHandler")
	}

	return &UserHandler{
		users:  users,
		tokens: tokens,
		logger: logger.With(slog.String("component", "user_handler")),
	}
}

// SaveUser handles PUT /user/{email}: it upserts the profile and returns a
// token embedding the submitted payload.
func (h *UserHandler) SaveUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	email, err := getPathParam(r, "email")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	profile, err := shared.DecodeDocument(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	result, err := h.users.Upsert(r.Context(), email, profile)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	token, err := h.tokens.GenerateToken(r.Context(), profile)
	if err != nil {
		HandleAPIError(w, r, err, "failed to generate token")
		return
	}

	log.Debug("user saved", slog.String("email", redact.Email(email)))
	shared.RespondWithJSON(w, r, http.StatusOK, SaveUserResponse{Result: result, Token: token})
}

// GetUser handles GET /user/{email}. An unknown email yields JSON null.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	email, err := getPathParam(r, "email")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	user, err := h.users.GetByEmail(r.Context(), email)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithJSON(w, r, http.StatusOK, nil)
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// ListUsers handles GET /users.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, users)
}
