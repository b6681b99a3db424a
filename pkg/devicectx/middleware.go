package devicectx

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/categorizr/pkg/logger"
)

// Response headers set when WithResponseHeaders is used.
const (
	HeaderCategory = "X-Device-Category"
	headerVary     = "Vary"
	headerUA       = "User-Agent"
)

type options struct {
	responseHeaders bool
	log             *slog.Logger
}

// Option configures Middleware.
type Option func(*options)

// WithResponseHeaders adds "Vary: User-Agent" and X-Device-Category to
// responses, so shared caches keep per-device variants apart.
func WithResponseHeaders() Option {
	return func(o *options) { o.responseHeaders = true }
}

// WithLogger logs each classification at debug level. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// Middleware classifies the request's User-Agent once and stores the result
// in the request context. A missing header is classified as an empty agent.
func Middleware(d Detector, opts ...Option) func(http.Handler) http.Handler {
	o := options{log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ua := r.Header.Get(headerUA)
			device := d.Detect(r.Context(), ua)

			if o.responseHeaders {
				w.Header().Add(headerVary, headerUA)
				w.Header().Set(HeaderCategory, device.String())
			}

			ctx := WithContext(r.Context(), device)
			o.log.DebugContext(ctx, "device detected", logger.UserAgent(ua))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
