// Package redis connects togglekit to a Redis server used as a reset bus.
//
// Connect retries the initial ping according to Config, Healthcheck wraps a
// ping for readiness probes, and PublishReset announces that features must be
// re-evaluated. Subscribers live in pkg/reset.
//
// # Usage
//
//	import "github.com/dmitrymomot/togglekit/pkg/redis"
//
//	var cfg redis.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	// invalidate "new-checkout" in every subscribed process
//	err = redis.PublishReset(ctx, client, "togglekit:reset", "new-checkout")
//
// # Error Handling
//
// Errors are joined with the sentinels declared in errors.go, so callers can
// use errors.Is(err, redis.ErrRedisNotReady) and friends.
package redis
