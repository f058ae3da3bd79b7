package featurefile

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/togglekit/pkg/reset"
)

// Option configures Parse and Load.
type Option func(*options)

type options struct {
	ctx    context.Context
	clock  func() time.Time
	logger *slog.Logger
	bus    *reset.Bus
	dir    string
}

// WithContext bounds the lifetime of reset goroutines (reset_every, watch).
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithClock replaces time.Now for expiry checks.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithLogger sets the logger for expression failures and watcher diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithBus subscribes every feature to bus under its own name, so external
// sources such as a Redis channel can invalidate it.
func WithBus(bus *reset.Bus) Option {
	return func(o *options) {
		o.bus = bus
	}
}

// WithBaseDir sets the directory relative watch paths are resolved against.
// Load sets it to the feature file's directory.
func WithBaseDir(dir string) Option {
	return func(o *options) {
		o.dir = dir
	}
}

func applyOptions(opts []Option) options {
	o := options{
		ctx:    context.Background(),
		clock:  time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
