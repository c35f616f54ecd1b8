// Package detect reads and writes files whose compression format is
// chosen from the file name extension.  `.gz` selects gzip, `.lz4`
// selects LZ4 frames, anything else is stored as-is; callers get the
// same buffered Reader and finalizing Writer either way.
package detect

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	gzipExtension = "gz"
	lz4Extension  = "lz4"
)

// Format identifies the codec selected for a file.
type Format int

const (
	// Identity is pass-through, uncompressed I/O.
	Identity Format = iota
	// Gzip is the gzip stream format (RFC 1952).
	Gzip
	// LZ4 is the LZ4 frame format.
	LZ4
)

func (f Format) String() string {
	switch f {
	case Identity:
		return "identity"
	case Gzip:
		return "gzip"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", int(f))
	}
}

// DetectFormat returns the codec for path based solely on its name
// extension.  The comparison is exact: "gz" and "lz4", lower-case only,
// so "archive.GZ" falls through to Identity just like a file with any
// other extension or none at all.  DetectFormat performs no I/O.
func DetectFormat(path string) Format {
	switch strings.TrimPrefix(filepath.Ext(path), ".") {
	case gzipExtension:
		return Gzip
	case lz4Extension:
		return LZ4
	default:
		return Identity
	}
}
