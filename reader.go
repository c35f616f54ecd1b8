package detect

import (
	"bufio"
	"io"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/IgaguriMK/detect-compression/env"
)

// Reader reads from a compressed or uncompressed file behind one
// buffered interface.  The codec is chosen by DetectFormat from the
// file name; the concrete decoder never surfaces.
type Reader interface {
	io.ReadCloser

	// Peek returns the next n bytes without advancing the reader.
	// The returned view is valid until the next read operation.
	Peek(n int) ([]byte, error)

	// Discard skips the next n bytes, returning the number of bytes
	// discarded.  Discarding no more than was last peeked never
	// re-reads the underlying stream.
	Discard(n int) (int, error)
}

type readerImpl struct {
	br *bufio.Reader

	// closers run in order on Close: the decoder, when it has
	// teardown of its own, before the raw file.
	closers []io.Closer
}

var _ Reader = (*readerImpl)(nil)

// Open opens path for reading, decompressing per the name extension.
// I/O and malformed-stream errors propagate from the backend unchanged.
func Open(path string, opts ...ROption) (Reader, error) {
	return open(path, opts)
}

// OpenWithWrapper is Open with wrap interposed between the raw file and
// the decoder, so the wrapper observes the compressed byte stream.
func OpenWithWrapper(path string, wrap env.ReadWrapper, opts ...ROption) (Reader, error) {
	return open(path, append([]ROption{WithReadWrapper(wrap)}, opts...))
}

func open(path string, opts []ROption) (Reader, error) {
	var o readerOptions
	o.setDefault()
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	format := DetectFormat(path)

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	dec, closer, err := newDecoder(format, o.wrap.WrapReader(f))
	if err != nil {
		return nil, multierr.Append(err, f.Close())
	}

	r := readerImpl{
		br:      bufio.NewReader(dec),
		closers: []io.Closer{f},
	}
	if closer != nil {
		r.closers = append([]io.Closer{closer}, r.closers...)
	}

	o.logger.Debug("opened reader",
		zap.String("path", path),
		zap.Stringer("format", format))

	return &r, nil
}

func (r *readerImpl) Read(p []byte) (int, error) { return r.br.Read(p) }

func (r *readerImpl) Peek(n int) ([]byte, error) { return r.br.Peek(n) }

func (r *readerImpl) Discard(n int) (int, error) { return r.br.Discard(n) }

func (r *readerImpl) Close() (err error) {
	for _, c := range r.closers {
		err = multierr.Append(err, c.Close())
	}
	r.closers = nil
	return
}
