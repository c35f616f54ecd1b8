package detect

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/pierrec/lz4"
)

// newDecoder wraps r in the decoder for format.  Identity returns r
// unchanged.  The returned closer is non-nil only when the decoder has
// teardown of its own; the LZ4 decoder's state simply dies with it.
func newDecoder(format Format, r io.Reader) (io.Reader, io.Closer, error) {
	switch format {
	case Gzip:
		dec, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		return dec, dec, nil
	case LZ4:
		return lz4.NewReader(r), nil, nil
	default:
		return r, nil, nil
	}
}
