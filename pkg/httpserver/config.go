package httpserver

import "time"

// Config is loaded from HTTP_* environment variables.
type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// NewFromConfig applies the non-zero fields of cfg, then opts.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	all := make([]Option, 0, 5+len(opts))
	if cfg.Addr != "" {
		all = append(all, WithAddr(cfg.Addr))
	}
	if cfg.ReadTimeout > 0 {
		all = append(all, WithReadTimeout(cfg.ReadTimeout))
	}
	if cfg.WriteTimeout > 0 {
		all = append(all, WithWriteTimeout(cfg.WriteTimeout))
	}
	if cfg.IdleTimeout > 0 {
		all = append(all, WithIdleTimeout(cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout > 0 {
		all = append(all, WithShutdownTimeout(cfg.ShutdownTimeout))
	}
	return New(append(all, opts...)...)
}
