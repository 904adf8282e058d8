package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/aircnc-api/internal/api/shared"
	"github.com/phrazzld/aircnc-api/internal/platform/logger"
	"github.com/phrazzld/aircnc-api/internal/redact"
	"github.com/phrazzld/aircnc-api/internal/store"
)

// LivenessMessage is the body of GET /.
const LivenessMessage = "Server is running..."

const healthCheckTimeout = 2 * time.Second

// HealthHandler serves liveness and readiness checks.
type HealthHandler struct {
	pinger store.Pinger
	logger *slog.Logger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(pinger store.Pinger, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for HealthHandler")
	}

	return &HealthHandler{
		pinger: pinger,
		logger: logger.With(slog.String("component", "health_handler")),
	}
}

// Root handles GET /.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithText(w, r, http.StatusOK, LivenessMessage)
}

// Health handles GET /health by pinging the store.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).
			Warn("health check failed", slog.String("error", redact.Error(err)))
		shared.RespondWithJSON(w, r, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "OK"})
}
