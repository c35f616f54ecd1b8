package detect

import (
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGzipLevel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		level Level
		want  int
	}{
		{LevelNone, gzip.NoCompression},
		{LevelMinimum, gzip.BestSpeed},
		{LevelMaximum, gzip.BestCompression},
	}
	for _, c := range cases {
		got, err := c.level.gzipLevel()
		require.NoError(t, err, "level: %s", c.level)
		assert.Equal(t, c.want, got, "level: %s", c.level)
	}

	_, err := Level(42).gzipLevel()
	assert.ErrorIs(t, err, ErrLevelNotSupported)
}

func TestLZ4Level(t *testing.T) {
	t.Parallel()

	got, err := LevelMinimum.lz4Level()
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = LevelMaximum.lz4Level()
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	_, err = LevelNone.lz4Level()
	assert.ErrorIs(t, err, ErrLevelNotSupported)

	_, err = Level(42).lz4Level()
	assert.ErrorIs(t, err, ErrLevelNotSupported)
}

func TestLevelString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "none", LevelNone.String())
	assert.Equal(t, "minimum", LevelMinimum.String())
	assert.Equal(t, "maximum", LevelMaximum.String())
	assert.Equal(t, "unknown(42)", Level(42).String())
}
