package freelist

import "log/slog"

type options struct {
	logger *slog.Logger
}

// Option is a configuration option for New and NewSafeFreeList.
type Option func(*options)

// WithLogger sets the logger used for list events such as discarded
// values and strict-mode violations. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
