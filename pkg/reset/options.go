package reset

import "log/slog"

// Option configures reset sources.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger for source diagnostics. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
