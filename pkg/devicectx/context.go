package devicectx

import (
	"context"

	"github.com/dmitrymomot/categorizr/pkg/categorizr"
)

type contextKey struct{}

// WithContext stores the detected device in ctx.
func WithContext(ctx context.Context, device categorizr.Device) context.Context {
	return context.WithValue(ctx, contextKey{}, device)
}

// FromContext returns the device stored by Middleware and whether one was set.
func FromContext(ctx context.Context) (categorizr.Device, bool) {
	if ctx == nil {
		return categorizr.Device{}, false
	}
	device, ok := ctx.Value(contextKey{}).(categorizr.Device)
	return device, ok
}

// DeviceFromContext returns the stored device, or the mobile-first default
// when none was set.
func DeviceFromContext(ctx context.Context) categorizr.Device {
	device, _ := FromContext(ctx)
	return device
}
