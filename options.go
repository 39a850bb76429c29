// Copyright 2016 Aleksandr Demakin. All rights reserved.

package fifo

import (
	"os"

	"go.uber.org/zap"
)

type options struct {
	log        *zap.Logger
	perm       os.FileMode
	bufferSize int
}

// Option configures a Fifo at construction time.
type Option func(*options)

// WithLogger sets a logger for construction events. Fifo does not log by default.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithPerm sets permission bits for a FIFO created by New. It has no effect on windows.
func WithPerm(perm os.FileMode) Option {
	return func(o *options) {
		o.perm = perm.Perm()
	}
}

// WithBufferSize sets the size of the write buffer.
func WithBufferSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.bufferSize = size
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		log:        zap.NewNop(),
		perm:       DefaultPerm,
		bufferSize: DefaultBufferSize,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
