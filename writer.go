package detect

import (
	"bufio"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/pierrec/lz4"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/IgaguriMK/detect-compression/env"
)

// Writer writes to a compressed or uncompressed file behind one
// interface.  The codec is chosen by DetectFormat from the file name.
//
// Every Writer must be finalized exactly once before it is discarded.
// Finalize completes the codec's trailer (gzip checksum and length,
// LZ4 end mark and content checksum), drains the write buffer and
// closes the file.  Closing a Writer that was never finalized panics:
// the alternative is a file that looks complete but does not decode.
type Writer interface {
	// Write forwards bytes to the active encoder.
	Write(p []byte) (n int, err error)

	// Flush writes buffered data through to the file without ending
	// the compressed stream.
	Flush() error

	// Finalize ends the compressed stream and closes the file.  It
	// must be called exactly once; subsequent calls return nil
	// without repeating teardown.
	Finalize() error

	// Close is a no-op after Finalize and panics otherwise.  It
	// exists so a finalized Writer composes with deferred cleanup.
	Close() error
}

type writerImpl struct {
	enc  encoder
	bufw *bufio.Writer
	f    *os.File

	finalized *atomic.Bool
}

var _ Writer = (*writerImpl)(nil)

// Create creates path for writing, compressing per the name extension
// at the given level.  The level is validated against the selected
// codec before the file is created: a level the codec cannot express
// (LevelNone on LZ4) fails with ErrLevelNotSupported and leaves
// nothing behind on disk.
func Create(path string, level Level, opts ...WOption) (Writer, error) {
	return create(path, level, opts)
}

// CreateWithWrapper is Create with wrap interposed between the raw
// file and the encoder, so the wrapper observes the compressed byte
// stream actually written to disk.
func CreateWithWrapper(path string, level Level, wrap env.WriteWrapper, opts ...WOption) (Writer, error) {
	return create(path, level, append([]WOption{WithWriteWrapper(wrap)}, opts...))
}

func create(path string, level Level, opts []WOption) (Writer, error) {
	var o writerOptions
	o.setDefault()
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	format := DetectFormat(path)

	var gzLvl, lz4Lvl int
	var err error
	switch format {
	case Gzip:
		gzLvl, err = level.gzipLevel()
	case LZ4:
		lz4Lvl, err = level.lz4Level()
	}
	if err != nil {
		return nil, err
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	bufw := bufio.NewWriter(o.wrap.WrapWriter(f))

	w := writerImpl{
		bufw:      bufw,
		f:         f,
		finalized: atomic.NewBool(false),
	}

	switch format {
	case Gzip:
		zw, err := gzip.NewWriterLevel(bufw, gzLvl)
		if err != nil {
			// level was validated above, so this is unreachable
			// short of a mapping bug
			return nil, multierr.Append(err, f.Close())
		}
		w.enc = &gzipEncoder{zw: zw}
	case LZ4:
		zw := lz4.NewWriter(bufw)
		zw.Header.CompressionLevel = lz4Lvl
		// Header.NoChecksum defaults to false: the frame carries a
		// content checksum.
		w.enc = &lz4Encoder{zw: zw}
	default:
		w.enc = identityEncoder{w: bufw}
	}

	o.logger.Debug("created writer",
		zap.String("path", path),
		zap.Stringer("format", format),
		zap.Stringer("level", level))

	return &w, nil
}

func (w *writerImpl) Write(p []byte) (int, error) { return w.enc.Write(p) }

func (w *writerImpl) Flush() error {
	if err := w.enc.flush(); err != nil {
		return err
	}
	return w.bufw.Flush()
}

func (w *writerImpl) Finalize() (err error) {
	if !w.finalized.CompareAndSwap(false, true) {
		return nil
	}
	err = multierr.Append(err, w.enc.finish())
	err = multierr.Append(err, w.bufw.Flush())
	err = multierr.Append(err, w.f.Close())
	return
}

func (w *writerImpl) Close() error {
	if !w.finalized.Load() {
		panic("detect: Writer discarded without Finalize; output would be truncated")
	}
	return nil
}
