package http

import (
	"net/http"
	"time"

	"github.com/recipebookapp/recipebook-server/internal/logger"
)

// withLogging emits one summary line per request: method, URI, response
// status, body size and elapsed time. It uses the request-scoped logger, so
// the line carries the trace id when withTraceID runs earlier in the chain.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", lw.status).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}
