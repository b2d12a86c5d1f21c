package stream

import "go.uber.org/zap"

// DefaultChunkSize is the read size used when WithChunkSize is not given.
const DefaultChunkSize = 32 * 1024

type options struct {
	chunkSize int
	logger    *zap.Logger
}

// Option configures a stream driver.
type Option func(*options)

// WithChunkSize sets the size of each read. Values below 1 are ignored.
func WithChunkSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.chunkSize = n
		}
	}
}

// WithLogger sets the logger used for debug output. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{chunkSize: DefaultChunkSize, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
