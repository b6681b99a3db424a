package devicectx

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/categorizr/pkg/logger"
)

// LoggerExtractor returns a ContextExtractor adding the detected category
// under "device".
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if device, ok := FromContext(ctx); ok {
			return logger.Category(device.String()), true
		}
		return slog.Attr{}, false
	}
}
