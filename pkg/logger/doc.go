// Package logger builds context-aware slog loggers.
//
// New returns a *slog.Logger configured by functional options: JSON output for
// production, colourised text output (github.com/lmittmann/tint) for
// development, a minimum level, static attributes, and ContextExtractor
// callbacks that pull request-scoped values such as the request id or the
// detected device category out of the context on every record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "categorizr"),
//	    logger.WithContextExtractors(
//	        requestid.LoggerExtractor(),
//	        devicectx.LoggerExtractor(),
//	    ),
//	)
//	log.InfoContext(ctx, "device detected", logger.UserAgent(ua))
//
// Attribute helpers (Error, Category, UserAgent, CacheKey, Component) keep key
// names consistent across packages.
package logger
