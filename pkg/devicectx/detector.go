package devicectx

import (
	"context"

	"github.com/dmitrymomot/categorizr/pkg/categorizr"
)

// Detector classifies a user agent on behalf of a request.
// devicecache.Detector satisfies it.
type Detector interface {
	Detect(ctx context.Context, userAgent string) categorizr.Device
}

// DetectorFunc adapts a function to Detector.
type DetectorFunc func(ctx context.Context, userAgent string) categorizr.Device

func (f DetectorFunc) Detect(ctx context.Context, userAgent string) categorizr.Device {
	return f(ctx, userAgent)
}

// EngineDetector adapts an engine to Detector without caching.
func EngineDetector(e *categorizr.Engine) Detector {
	return DetectorFunc(func(_ context.Context, userAgent string) categorizr.Device {
		return e.Detect(userAgent)
	})
}
