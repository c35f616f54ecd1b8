package detect

import (
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/pierrec/lz4"
)

// encoder is one codec's write surface.  flush makes buffered bytes
// visible downstream without ending the stream; finish ends the stream,
// emitting any trailer the format requires.
type encoder interface {
	io.Writer

	flush() error
	finish() error
}

// gzipEncoder finishes by closing the gzip stream, which emits the
// CRC-32 and length trailer.  Flushing alone leaves the trailer
// unwritten and the file undecodable by strict readers.
type gzipEncoder struct {
	zw *gzip.Writer
}

func (e *gzipEncoder) Write(p []byte) (int, error) { return e.zw.Write(p) }

func (e *gzipEncoder) flush() error { return e.zw.Flush() }

func (e *gzipEncoder) finish() error { return e.zw.Close() }

// lz4Encoder finishes in two steps: flush buffered blocks, then close
// the frame to emit the end mark and content checksum.  The frame is
// not decodable until the second step has run.
type lz4Encoder struct {
	zw *lz4.Writer
}

func (e *lz4Encoder) Write(p []byte) (int, error) { return e.zw.Write(p) }

func (e *lz4Encoder) flush() error { return e.zw.Flush() }

func (e *lz4Encoder) finish() error {
	if err := e.zw.Flush(); err != nil {
		return err
	}
	return e.zw.Close()
}

// identityEncoder writes straight through.  Finishing amounts to
// flushing the buffered layer, which the owning Writer does itself.
type identityEncoder struct {
	w io.Writer
}

func (e identityEncoder) Write(p []byte) (int, error) { return e.w.Write(p) }

func (e identityEncoder) flush() error { return nil }

func (e identityEncoder) finish() error { return nil }
