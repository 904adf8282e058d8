package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/aircnc-api/internal/api/shared"
	"github.com/phrazzld/aircnc-api/internal/domain"
	"github.com/phrazzld/aircnc-api/internal/platform/logger"
	"github.com/phrazzld/aircnc-api/internal/redact"
	"github.com/phrazzld/aircnc-api/internal/store"
)

// HomeHandler handles listing endpoints.
type HomeHandler struct {
	homes  store.HomeStore
	logger *slog.Logger
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(homes store.HomeStore, logger *slog.Logger) *HomeHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for HomeHandler")
	}

	return &HomeHandler{
		homes:  homes,
		logger: logger.With(slog.String("component", "home_handler")),
	}
}

// CreateHome handles POST /homes.
func (h *HomeHandler) CreateHome(w http.ResponseWriter, r *http.Request) {
	home, err := shared.DecodeDocument(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	result, err := h.homes.Create(r.Context(), home)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("home created",
		slog.String("home_id", result.InsertedID),
		slog.String("host_email", redact.Email(home.HostEmail())),
	)
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// ListHomes handles GET /homes.
func (h *HomeHandler) ListHomes(w http.ResponseWriter, r *http.Request) {
	h.respondWithList(w, r, store.HomeFilter{})
}

// SearchHomes handles GET /search-result?location=X. Without a location
// every listing matches.
func (h *HomeHandler) SearchHomes(w http.ResponseWriter, r *http.Request) {
	h.respondWithList(w, r, store.HomeFilter{Location: r.URL.Query().Get("location")})
}

// GetHomes handles GET /homes/{key}. A key containing '@' lists the host's
// homes; any other key is a listing id and yields one document or null.
func (h *HomeHandler) GetHomes(w http.ResponseWriter, r *http.Request) {
	key, err := getPathParam(r, "key")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if isEmailKey(key) {
		h.respondWithList(w, r, store.HomeFilter{HostEmail: key})
		return
	}

	home, err := h.homes.GetByID(r.Context(), key)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithJSON(w, r, http.StatusOK, nil)
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, home)
}

// UpdateHome handles PUT /homes. The update is not scoped to a listing: it
// lands on whichever listing the store matches first.
func (h *HomeHandler) UpdateHome(w http.ResponseWriter, r *http.Request) {
	home, err := shared.DecodeDocument(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log := logger.FromContextOrDefault(r.Context(), h.logger)
	if _, ok := home[domain.FieldID]; ok {
		log.Debug("ignoring _id in home update body")
	}

	result, err := h.homes.UpdateFirst(r.Context(), home.Without(domain.FieldID))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// DeleteHome handles DELETE /home/{id}.
func (h *HomeHandler) DeleteHome(w http.ResponseWriter, r *http.Request) {
	id, err := getPathParam(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	result, err := h.homes.Delete(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

func (h *HomeHandler) respondWithList(w http.ResponseWriter, r *http.Request, filter store.HomeFilter) {
	homes, err := h.homes.List(r.Context(), filter)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, homes)
}
