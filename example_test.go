package detect_test

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	detect "github.com/IgaguriMK/detect-compression"
	"github.com/IgaguriMK/detect-compression/env"
)

func Example() {
	dir, err := os.MkdirTemp("", "example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	// The ".gz" extension selects the gzip codec.
	path := filepath.Join(dir, "example.gz")

	w, err := detect.Create(path, detect.LevelMaximum)
	if err != nil {
		log.Fatal(err)
	}

	_, err = w.Write([]byte("Hello World!"))
	if err != nil {
		log.Fatal(err)
	}

	// Finalize completes the gzip trailer; skipping it would leave
	// the file undecodable.
	err = w.Finalize()
	if err != nil {
		log.Fatal(err)
	}

	r, err := detect.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer r.Close()

	all, err := io.ReadAll(r)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(string(all))
	// Output: Hello World!
}

func Example_wrapper() {
	dir, err := os.MkdirTemp("", "example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "example.txt")

	// A write wrapper observes the bytes actually written to the
	// file, after compression.  For an uncompressed target that is
	// exactly the payload.
	var written int64
	wrap := env.WriteWrapperFunc(func(f *os.File) io.Writer {
		return writerFunc(func(p []byte) (int, error) {
			n, err := f.Write(p)
			written += int64(n)
			return n, err
		})
	})

	w, err := detect.CreateWithWrapper(path, detect.LevelNone, wrap)
	if err != nil {
		log.Fatal(err)
	}
	_, err = w.Write([]byte("Hello World!"))
	if err != nil {
		log.Fatal(err)
	}
	err = w.Finalize()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(written)
	// Output: 12
}

type writerFunc func(p []byte) (int, error)

func (fn writerFunc) Write(p []byte) (int, error) { return fn(p) }
