package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		path string
		want Format
	}{
		{"data.gz", Gzip},
		{"data.lz4", LZ4},
		{"data.txt", Identity},
		{"data", Identity},
		{"data.tar.gz", Gzip},
		{"data.gz.bak", Identity},
		{"data.gzip", Identity},
		{"dir.gz/data", Identity},
		{"/var/log/app/data.lz4", LZ4},
		// extension matching is exact and case-sensitive
		{"data.GZ", Identity},
		{"data.Gz", Identity},
		{"data.LZ4", Identity},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, DetectFormat(c.path), "path: %s", c.path)
	}
}

func TestFormatString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "identity", Identity.String())
	assert.Equal(t, "gzip", Gzip.String())
	assert.Equal(t, "lz4", LZ4.String())
	assert.Equal(t, "unknown(42)", Format(42).String())
}
