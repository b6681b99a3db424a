// Package redis connects to Redis with retries and exposes a readiness probe.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	ready := redis.Healthcheck(client)
//
// The client backs devicecache.RedisStore, which shares classification
// results between service instances.
package redis
