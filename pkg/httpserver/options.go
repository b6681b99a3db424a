package httpserver

import (
	"log/slog"
	"net/http"
	"time"
)

// Option configures a Server.
type Option func(*config)

func WithAddr(addr string) Option {
	if addr == "" {
		panic("httpserver: empty addr")
	}
	return func(c *config) { c.addr = addr }
}

func WithReadTimeout(d time.Duration) Option {
	mustPositive("read timeout", d)
	return func(c *config) { c.readTimeout = d }
}

func WithWriteTimeout(d time.Duration) Option {
	mustPositive("write timeout", d)
	return func(c *config) { c.writeTimeout = d }
}

func WithIdleTimeout(d time.Duration) Option {
	mustPositive("idle timeout", d)
	return func(c *config) { c.idleTimeout = d }
}

func WithShutdownTimeout(d time.Duration) Option {
	mustPositive("shutdown timeout", d)
	return func(c *config) { c.shutdownTimeout = d }
}

// WithServer reuses srv. Fields already set on srv win over options.
func WithServer(srv *http.Server) Option {
	if srv == nil {
		panic("httpserver: nil server")
	}
	return func(c *config) { c.server = srv }
}

// WithLogger sets the lifecycle logger. Nil discards.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithStartHook runs h once the listener is bound.
func WithStartHook(h func(*slog.Logger)) Option {
	if h == nil {
		panic("httpserver: nil start hook")
	}
	return func(c *config) { c.startHooks = append(c.startHooks, h) }
}

// WithStopHook runs h after the server has drained.
func WithStopHook(h func(*slog.Logger)) Option {
	if h == nil {
		panic("httpserver: nil stop hook")
	}
	return func(c *config) { c.stopHooks = append(c.stopHooks, h) }
}

func mustPositive(name string, d time.Duration) {
	if d <= 0 {
		panic("httpserver: " + name + " must be > 0")
	}
}
