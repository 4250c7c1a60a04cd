package middleware

import (
	"log/slog"
	"net/http"

	"github.com/sjnakib/portfolio/internal/api/shared"
	"github.com/sjnakib/portfolio/internal/platform/logger"
)

// NewTraceMiddleware assigns every request a trace ID, echoes it in the
// X-Trace-ID response header, and puts a logger carrying it into the request
// context. Apply it early so later handlers and error responses can use both.
func NewTraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			w.Header().Set(shared.TraceIDHeader, traceID)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
