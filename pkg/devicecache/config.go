package devicecache

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/categorizr/pkg/categorizr"
)

// Cache drivers.
const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
	DriverNone   = "none"
)

type Config struct {
	Driver string        `env:"DEVICE_CACHE_DRIVER" envDefault:"memory"`       // Driver is one of memory, redis or none.
	Size   int           `env:"DEVICE_CACHE_SIZE" envDefault:"10000"`          // Size bounds the memory store.
	TTL    time.Duration `env:"DEVICE_CACHE_TTL" envDefault:"24h"`             // TTL is the entry lifetime; zero disables expiry.
	Prefix string        `env:"DEVICE_CACHE_PREFIX" envDefault:"categorizr::"` // Prefix namespaces the keys.
}

// NewFromConfig builds a Detector for cfg.Driver. The redis client is only
// required for DriverRedis.
func NewFromConfig(cfg Config, engine *categorizr.Engine, client redis.UniversalClient, log *slog.Logger) (*Detector, error) {
	var store Store
	switch cfg.Driver {
	case DriverMemory, "":
		mem, err := NewMemoryStore(cfg.Size, cfg.TTL)
		if err != nil {
			return nil, err
		}
		store = mem
	case DriverRedis:
		if client == nil {
			return nil, fmt.Errorf("%w: redis driver requires a client", ErrStoreUnavailable)
		}
		store = NewRedisStore(client, cfg.TTL)
	case DriverNone:
		store = NopStore{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}

	opts := []Option{WithLogger(log)}
	if cfg.Prefix != "" {
		opts = append(opts, WithPrefix(cfg.Prefix))
	}
	return NewDetector(engine, store, opts...), nil
}
