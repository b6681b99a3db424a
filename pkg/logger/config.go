package logger

import "log/slog"

// Config holds logger settings loaded from the environment.
type Config struct {
	Env     string `env:"APP_ENV" envDefault:"production"`  // Env selects per-environment defaults (development, staging, production).
	Service string `env:"APP_NAME" envDefault:"categorizr"` // Service is attached to every record.
	Level   string `env:"LOG_LEVEL"`                        // Level overrides the environment default when set.
}

// NewFromConfig creates a logger from cfg. Additional options are applied last.
func NewFromConfig(cfg Config, opts ...Option) *slog.Logger {
	configOpts := []Option{WithEnvironment(cfg.Env, cfg.Service)}
	if cfg.Level != "" {
		configOpts = append(configOpts, WithLevel(ParseLevel(cfg.Level)))
	}
	return New(append(configOpts, opts...)...)
}
