package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured logs for production log aggregation systems.
	FormatJSON Format = "json"
	// FormatText outputs colourised human-readable logs for development.
	FormatText Format = "text"
)

// Environment names understood by WithEnvironment.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Option configures logger creation.
type Option func(*config)

func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithFormat sets output format.
// Panics for invalid formats: a misconfigured logger should prevent startup.
func WithFormat(f Format) Option {
	switch f {
	case FormatJSON, FormatText:
	default:
		panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
	}
	return func(c *config) { c.format = f }
}

// WithOutput sets custom output destination, ignoring nil writers.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithNoColor disables ANSI colours in text output.
func WithNoColor() Option {
	return func(c *config) { c.noColor = true }
}

// WithAttr adds static attributes to every log record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// WithContextExtractors registers functions that inject attributes from context.
// Nil extractors are skipped.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		for _, ex := range extractors {
			if ex != nil {
				c.extractors = append(c.extractors, ex)
			}
		}
	}
}

// WithEnvironment applies per-environment defaults: JSON at info level for
// production and staging, coloured text at debug level otherwise.
func WithEnvironment(env, service string) Option {
	return func(c *config) {
		switch env {
		case EnvProduction, "prod":
			c.level, c.format, env = slog.LevelInfo, FormatJSON, EnvProduction
		case EnvStaging, "stage":
			c.level, c.format, env = slog.LevelInfo, FormatJSON, EnvStaging
		default:
			c.level, c.format, env = slog.LevelDebug, FormatText, EnvDevelopment
		}
		c.attrs = append(c.attrs, slog.String("env", env))
		if service != "" {
			c.attrs = append(c.attrs, slog.String("service", service))
		}
	}
}

// ParseLevel maps debug, info, warn and error (case-insensitive) to a level.
// Unknown values map to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

type config struct {
	level      slog.Level
	format     Format
	output     io.Writer
	noColor    bool
	attrs      []slog.Attr
	extractors []ContextExtractor
}

// defaultConfig: JSON at info level on stdout.
func defaultConfig() *config {
	return &config{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
}

// New creates a configured slog.Logger that injects context attributes
// through the registered extractors.
func New(opts ...Option) *slog.Logger {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	var handler slog.Handler
	if cfg.format == FormatText {
		handler = tint.NewHandler(cfg.output, &tint.Options{
			Level:      cfg.level,
			TimeFormat: "15:04:05.000",
			NoColor:    cfg.noColor,
		})
	} else {
		handler = slog.NewJSONHandler(cfg.output, &slog.HandlerOptions{Level: cfg.level})
	}

	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}

	return slog.New(NewLogHandlerDecorator(handler, cfg.extractors...))
}
