package detect

import (
	"go.uber.org/zap"

	"github.com/IgaguriMK/detect-compression/env"
)

type WOption func(*writerOptions) error

type writerOptions struct {
	logger *zap.Logger
	wrap   env.WriteWrapper
}

func (o *writerOptions) setDefault() {
	*o = writerOptions{
		logger: zap.NewNop(),
		wrap:   env.Identity{},
	}
}

// WithWLogger sets the logger used while creating the file.
func WithWLogger(l *zap.Logger) WOption {
	return func(o *writerOptions) error { o.logger = l; return nil }
}

// WithWriteWrapper interposes wrap between the raw file and the encoder.
func WithWriteWrapper(wrap env.WriteWrapper) WOption {
	return func(o *writerOptions) error { o.wrap = wrap; return nil }
}
