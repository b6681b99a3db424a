package devicecache

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/categorizr/pkg/categorizr"
	"github.com/dmitrymomot/categorizr/pkg/logger"
)

// Detector memoises an engine's results in a Store. Store failures are logged
// and never surface to callers: the engine result is returned instead.
type Detector struct {
	engine *categorizr.Engine
	store  Store
	prefix string
	log    *slog.Logger
}

// Option configures a Detector.
type Option func(*Detector)

// WithPrefix overrides DefaultPrefix.
func WithPrefix(prefix string) Option {
	return func(d *Detector) { d.prefix = prefix }
}

// WithLogger sets the logger used for store failures. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(d *Detector) {
		if l != nil {
			d.log = l
		}
	}
}

// NewDetector wraps engine with store. A nil store disables caching.
func NewDetector(engine *categorizr.Engine, store Store, opts ...Option) *Detector {
	if store == nil {
		store = NopStore{}
	}
	d := &Detector{
		engine: engine,
		store:  store,
		prefix: DefaultPrefix,
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Engine returns the wrapped engine.
func (d *Detector) Engine() *categorizr.Engine { return d.engine }

// Detect returns the cached classification of ua, classifying and storing it
// on a miss.
func (d *Detector) Detect(ctx context.Context, ua string) categorizr.Device {
	key := Key(d.prefix, d.engine.Options(), ua)

	device, ok, err := d.store.Get(ctx, key)
	switch {
	case err != nil:
		d.log.WarnContext(ctx, "device cache lookup failed", logger.CacheKey(key), logger.Error(err))
	case ok:
		return device
	}

	device = d.engine.Detect(ua)
	if err := d.store.Set(ctx, key, device); err != nil {
		d.log.WarnContext(ctx, "device cache store failed", logger.CacheKey(key), logger.Error(err))
	}
	return device
}
