package batch

import "github.com/bft-labs/listsplit/pkg/log"

// Option configures optional behavior of a split.
type Option func(*options)

type options struct {
	maxSize int
	bounded bool
	logger  log.Logger
}

func defaultOptions() options {
	return options{logger: log.Noop}
}

// WithMaxSize caps the number of elements per batch.
// Without it batches are unbounded in size. A cap of zero or less disables
// batching entirely: every element is returned as ignored.
func WithMaxSize(n int) Option {
	return func(o *options) {
		o.maxSize = n
		o.bounded = true
	}
}

// WithLogger sets the logger used for debug tracing.
// Nil is ignored.
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// fits reports whether a batch holding n elements may take one more.
func (o *options) fits(n int) bool {
	return !o.bounded || n < o.maxSize
}
