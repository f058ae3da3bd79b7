// Package reset provides sources that invalidate memoized feature toggles.
//
// A toggle set hands every feature with a ResetOn hook a callback that drops
// its memoized value. The sources here produce such hooks:
//
//   - Every invalidates on a fixed interval.
//   - FileWatcher invalidates when a file changes (fsnotify).
//   - Bus routes invalidations by feature name; Route and SubscribeRedis feed
//     it from a Redis pub/sub channel so several processes can be reset at once.
//
// # Usage
//
//	bus := reset.NewBus()
//	if _, err := reset.SubscribeRedis(ctx, client, "togglekit:reset", bus); err != nil {
//		return err
//	}
//
//	toggles, err := feature.New([]feature.Feature{
//		{Name: "new-checkout", Test: checkoutEnabled, ResetOn: bus.Subscribe("new-checkout")},
//		{Name: "promo-banner", Test: promoActive, ResetOn: reset.Every(ctx, time.Minute)},
//	})
//
// Publishing "new-checkout" on the channel (see redis.PublishReset) makes the
// next Get re-run that feature's test; publishing "*" resets every feature
// subscribed to the bus.
package reset
