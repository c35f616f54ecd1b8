package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	detect "github.com/IgaguriMK/detect-compression"
	"github.com/IgaguriMK/detect-compression/env"
)

func main() {
	var (
		outputFlag, dirFlag, levelFlag        string
		verifyFlag, verboseFlag, progressFlag bool
	)

	flag.StringVar(&outputFlag, "o", "", "output filename (single input)")
	flag.StringVar(&dirFlag, "d", "", "output directory (any number of inputs, base names kept)")
	flag.StringVar(&levelFlag, "l", "min", "compression level: none, min or max")
	flag.BoolVar(&verifyFlag, "t", false, "re-read the output after the write and compare checksums")
	flag.BoolVar(&verboseFlag, "v", false, "be verbose")
	flag.BoolVar(&progressFlag, "p", false, "show read progress")

	flag.Parse()

	var err error
	var logger *zap.Logger
	if verboseFlag {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatal("failed to initialize logger", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	level, err := parseLevel(levelFlag)
	if err != nil {
		logger.Fatal("failed to parse level", zap.Error(err))
	}

	inputs := flag.Args()
	switch {
	case len(inputs) == 0:
		logger.Fatal("at least one input file needs to be defined")
	case outputFlag != "" && dirFlag != "":
		logger.Fatal("-o and -d can't be used together")
	case outputFlag != "" && len(inputs) > 1:
		logger.Fatal("-o works with a single input, use -d for more")
	case outputFlag == "" && dirFlag == "":
		logger.Fatal("either output file or output directory needs to be defined")
	}

	// A single reader/writer pair is not safe to share, but
	// independent pairs over different files are.
	var g errgroup.Group
	for _, input := range inputs {
		input := input
		output := outputFlag
		if output == "" {
			output = filepath.Join(dirFlag, filepath.Base(input))
		}
		g.Go(func() error {
			return recompress(logger.With(zap.String("input", input)),
				input, output, level, verifyFlag, progressFlag)
		})
	}
	if err := g.Wait(); err != nil {
		logger.Fatal("recompression failed", zap.Error(err))
	}
}

func parseLevel(s string) (detect.Level, error) {
	switch strings.ToLower(s) {
	case "none":
		return detect.LevelNone, nil
	case "min", "minimum":
		return detect.LevelMinimum, nil
	case "max", "maximum":
		return detect.LevelMaximum, nil
	default:
		return 0, fmt.Errorf("unknown level %q", s)
	}
}

func recompress(logger *zap.Logger, input, output string, level detect.Level, verify, progress bool) error {
	ropts := []detect.ROption{detect.WithRLogger(logger)}
	if progress {
		fi, err := os.Stat(input)
		if err != nil {
			return err
		}
		bar := progressbar.DefaultBytes(fi.Size(), filepath.Base(input))
		ropts = append(ropts, detect.WithReadWrapper(env.ReadWrapperFunc(func(f *os.File) io.Reader {
			return io.TeeReader(f, bar)
		})))
	}

	r, err := detect.Open(input, ropts...)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer r.Close()

	w, err := detect.Create(output, level, detect.WithWLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}

	expected := xxhash.New()
	if _, err := io.Copy(io.MultiWriter(w, expected), r); err != nil {
		_ = w.Finalize()
		return fmt.Errorf("failed to recompress: %w", err)
	}
	if err := w.Finalize(); err != nil {
		return fmt.Errorf("failed to finalize output: %w", err)
	}

	if verify {
		vr, err := detect.Open(output, detect.WithRLogger(logger))
		if err != nil {
			return fmt.Errorf("failed to open output for verification: %w", err)
		}
		defer vr.Close()

		actual := xxhash.New()
		if _, err := io.Copy(actual, vr); err != nil {
			return fmt.Errorf("failed to re-read output: %w", err)
		}
		if actual.Sum64() != expected.Sum64() {
			return fmt.Errorf("checksum verification failed: expected %016x, actual %016x",
				expected.Sum64(), actual.Sum64())
		}
		logger.Info("checksum verification succeeded", zap.Uint64("checksum", actual.Sum64()))
	}

	logger.Info("recompressed",
		zap.String("output", output),
		zap.Stringer("level", level))
	return nil
}
