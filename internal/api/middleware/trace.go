package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/aircnc-api/internal/api/shared"
	"github.com/phrazzld/aircnc-api/internal/platform/logger"
)

// TraceIDHeader echoes the request's trace ID back to the client.
const TraceIDHeader = "X-Trace-ID"

// TraceMiddleware adds a trace ID and a logger carrying it to the request
// context. It should be applied early in the middleware chain so that all
// subsequent handlers log with the trace ID.
func TraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			w.Header().Set(TraceIDHeader, traceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
