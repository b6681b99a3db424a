package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/categorizr/pkg/logger"
)

// Check reports whether a dependency is usable.
type Check func(context.Context) error

// HealthCheckHandler answers 200 "ALIVE" when no checks are given (liveness).
// With checks it answers 200 "READY" when all pass and 503 "NOT_READY" on the
// first failure (readiness). Checks run with the request context.
func HealthCheckHandler(log *slog.Logger, checks ...Check) http.HandlerFunc {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if len(checks) == 0 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ALIVE"))
			return
		}
		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.WarnContext(r.Context(), "readiness check failed", logger.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
