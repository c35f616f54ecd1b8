package detect

import (
	"go.uber.org/zap"

	"github.com/IgaguriMK/detect-compression/env"
)

type ROption func(*readerOptions) error

type readerOptions struct {
	logger *zap.Logger
	wrap   env.ReadWrapper
}

func (o *readerOptions) setDefault() {
	*o = readerOptions{
		logger: zap.NewNop(),
		wrap:   env.Identity{},
	}
}

// WithRLogger sets the logger used while opening the file.
func WithRLogger(l *zap.Logger) ROption {
	return func(o *readerOptions) error { o.logger = l; return nil }
}

// WithReadWrapper interposes wrap between the raw file and the decoder.
func WithReadWrapper(wrap env.ReadWrapper) ROption {
	return func(o *readerOptions) error { o.wrap = wrap; return nil }
}
