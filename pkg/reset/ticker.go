package reset

import (
	"context"
	"time"

	"github.com/dmitrymomot/togglekit/pkg/feature"
)

// Every returns a reset hook that invalidates the feature every interval
// until ctx is done. A non-positive interval never invalidates.
func Every(ctx context.Context, interval time.Duration) feature.ResetFunc {
	return func(invalidate func()) {
		if interval <= 0 {
			return
		}
		go func() {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					invalidate()
				}
			}
		}()
	}
}
