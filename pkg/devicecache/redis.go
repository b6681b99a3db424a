package devicecache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/categorizr/pkg/categorizr"
)

// RedisStore keeps classification results in Redis as category tags.
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisStore creates a store on client. Entries expire after ttl; zero
// means no expiration.
func NewRedisStore(client redis.UniversalClient, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Get returns the stored device. redis.Nil is a miss; a value that is not a
// known category is reported as ErrCorruptEntry.
func (s *RedisStore) Get(ctx context.Context, key string) (categorizr.Device, bool, error) {
	val, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return categorizr.Device{}, false, nil
	}
	if err != nil {
		return categorizr.Device{}, false, errors.Join(ErrStoreUnavailable, err)
	}

	category, err := categorizr.ParseCategory(val)
	if err != nil {
		return categorizr.Device{}, false, errors.Join(ErrCorruptEntry, err)
	}
	return categorizr.NewDevice(string(category)), true, nil
}

// Set stores the device's category tag under key.
func (s *RedisStore) Set(ctx context.Context, key string, device categorizr.Device) error {
	if err := s.client.Set(ctx, key, device.String(), s.ttl).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
