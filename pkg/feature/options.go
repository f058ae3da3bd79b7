package feature

import (
	"log/slog"
	"slices"
)

// Option configures a toggle set created by New.
type Option func(*options)

type options struct {
	logger *slog.Logger

	expected    []string
	hasExpected bool

	healthHandler    HealthHandler
	hasHealthHandler bool
}

// WithLogger sets the logger used for evaluation and health diagnostics.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithExpectedDependencies overrides the process-wide expected dependencies
// for this toggle set only. Nil means no restriction.
func WithExpectedDependencies(names []string) Option {
	return func(o *options) {
		o.expected = slices.Clone(names)
		o.hasExpected = true
	}
}

// WithHealthHandler overrides the process-wide health alert handler
// for this toggle set only. Nil disables reporting.
func WithHealthHandler(handler HealthHandler) Option {
	return func(o *options) {
		o.healthHandler = handler
		o.hasHealthHandler = true
	}
}

func applyOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if !o.hasExpected {
		o.expected = expectedDependencies()
	}
	if !o.hasHealthHandler {
		o.healthHandler = healthHandler()
	}
	return o
}
