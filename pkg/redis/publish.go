package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// ResetAll is the payload that invalidates every subscribed feature.
const ResetAll = "*"

// PublishReset announces on channel that the named features must be
// re-evaluated. Without names it publishes ResetAll.
func PublishReset(ctx context.Context, client redis.UniversalClient, channel string, names ...string) error {
	if channel == "" {
		return ErrEmptyChannel
	}
	if len(names) == 0 {
		names = []string{ResetAll}
	}
	for _, name := range names {
		if err := client.Publish(ctx, channel, name).Err(); err != nil {
			return errors.Join(ErrPublishFailed, err)
		}
	}
	return nil
}
