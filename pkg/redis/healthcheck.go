package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

var ErrHealthcheckFailed = errors.New("redis healthcheck failed")

// Healthcheck returns a readiness check that pings the server with the
// caller's context.
func Healthcheck(client redis.UniversalClient) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
