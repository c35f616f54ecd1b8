// Package env defines the wrapper injection points of the detect
// package.  A wrapper is a caller-supplied factory that substitutes its
// own stream for the raw file handle before any codec attaches.  This
// is useful when, for example, there is progress reporting or byte
// accounting to layer in: the wrapper sees the raw (compressed) byte
// stream while the codec stays unaware that wrapping occurred.
package env

import (
	"io"
	"os"
)

// ReadWrapper produces the reader the decoder will consume instead of
// the raw file.  The wrapper takes exclusive ownership of f; the
// buffering and codec layered on top in turn exclusively own the
// returned reader.
type ReadWrapper interface {
	WrapReader(f *os.File) io.Reader
}

// WriteWrapper produces the writer the encoder will emit into instead
// of the raw file.  Ownership chains the same way as for ReadWrapper.
type WriteWrapper interface {
	WrapWriter(f *os.File) io.Writer
}

// ReadWrapperFunc adapts a function to the ReadWrapper interface.
type ReadWrapperFunc func(f *os.File) io.Reader

func (fn ReadWrapperFunc) WrapReader(f *os.File) io.Reader { return fn(f) }

// WriteWrapperFunc adapts a function to the WriteWrapper interface.
type WriteWrapperFunc func(f *os.File) io.Writer

func (fn WriteWrapperFunc) WrapWriter(f *os.File) io.Writer { return fn(f) }

// Identity forwards reads and writes unchanged.  It is the default
// wrapper on both sides.
type Identity struct{}

var (
	_ ReadWrapper  = Identity{}
	_ WriteWrapper = Identity{}
)

func (Identity) WrapReader(f *os.File) io.Reader { return f }

func (Identity) WrapWriter(f *os.File) io.Writer { return f }
