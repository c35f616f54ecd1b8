package detect

import (
	"errors"
	"fmt"

	"github.com/klauspost/compress/gzip"
)

// ErrLevelNotSupported is returned by Create when the selected codec
// has no representation for the requested compression level.
var ErrLevelNotSupported = errors.New("compression level not supported by codec")

// Level is the abstract compression level.  It is translated to each
// codec's native tuning parameter when a Writer is created.
type Level int

const (
	// LevelNone stores data uncompressed.
	LevelNone Level = iota
	// LevelMinimum is the fastest setting, producing the largest output.
	LevelMinimum
	// LevelMaximum is the slowest setting, producing the smallest output.
	LevelMaximum
)

func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelMinimum:
		return "minimum"
	case LevelMaximum:
		return "maximum"
	default:
		return fmt.Sprintf("unknown(%d)", int(l))
	}
}

// gzipLevel translates l to a gzip level.  Gzip has a native
// no-compression mode, so every Level maps.
func (l Level) gzipLevel() (int, error) {
	switch l {
	case LevelNone:
		return gzip.NoCompression, nil
	case LevelMinimum:
		return gzip.BestSpeed, nil
	case LevelMaximum:
		return gzip.BestCompression, nil
	default:
		return 0, fmt.Errorf("%w: gzip: unknown level %d", ErrLevelNotSupported, int(l))
	}
}

// lz4Level translates l to an LZ4 compression level.  LZ4 frames have
// no uncompressed mode at this surface, so LevelNone fails instead of
// being silently upgraded to a compressing level.
func (l Level) lz4Level() (int, error) {
	switch l {
	case LevelNone:
		return 0, fmt.Errorf("%w: lz4 has no non-compression mode", ErrLevelNotSupported)
	case LevelMinimum:
		return 1, nil
	case LevelMaximum:
		return 3, nil
	default:
		return 0, fmt.Errorf("%w: lz4: unknown level %d", ErrLevelNotSupported, int(l))
	}
}
