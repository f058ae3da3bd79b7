package reset

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/togglekit/pkg/logger"
)

// ErrSubscribeFailed indicates the Redis subscription could not be established.
var ErrSubscribeFailed = errors.New("failed to subscribe to reset channel")

// SubscribeRedis subscribes to channel and routes every message to bus:
// the payload is a feature name, or All to invalidate everything.
// The subscription lives until ctx is done or the returned PubSub is closed.
func SubscribeRedis(ctx context.Context, client redis.UniversalClient, channel string, bus *Bus, opts ...Option) (*redis.PubSub, error) {
	o := applyOptions(opts)

	pubsub := client.Subscribe(ctx, channel)
	// wait for the subscription confirmation so messages are not lost
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, errors.Join(ErrSubscribeFailed, err)
	}

	log := o.logger.With(logger.Component("reset"), logger.Source("redis"), logger.Channel(channel))
	go func() {
		Route(ctx, pubsub.Channel(), bus, WithLogger(log))
		_ = pubsub.Close()
	}()
	return pubsub, nil
}

// Route forwards messages to bus until ctx is done or msgs is closed.
func Route(ctx context.Context, msgs <-chan *redis.Message, bus *Bus, opts ...Option) {
	log := applyOptions(opts).logger
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			if msg == nil {
				continue
			}
			name := strings.TrimSpace(msg.Payload)
			if name == "" {
				continue
			}
			n := bus.Reset(name)
			log.Debug("reset message received", logger.Feature(name), slog.Int("features", n))
		}
	}
}
