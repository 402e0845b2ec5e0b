package vecio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hupe1980/proxgo"
)

// Open opens path and wraps it with the decompressor its extension names.
// Closing the result closes the file.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vecio: open: %w", err)
	}

	rc, err := NewReader(f, CompressionFromPath(path))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &fileReader{ReadCloser: rc, f: f}, nil
}

// Create creates path and wraps it with the compressor its extension names.
// Closing the result flushes the stream and closes the file.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("vecio: create: %w", err)
	}

	wc, err := NewWriter(f, CompressionFromPath(path))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &fileWriter{WriteCloser: wc, f: f}, nil
}

// ReadFile decodes one vector from path. See Decode for the meaning of kind.
func ReadFile(path string, kind proxgo.Kind) (proxgo.Vector, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return Decode(rc, FormatFromPath(path), kind)
}

// WriteFile encodes v to path.
func WriteFile(path string, v proxgo.Vector) (err error) {
	wc, err := Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, wc.Close())
	}()

	return Encode(wc, FormatFromPath(path), v)
}

type fileReader struct {
	io.ReadCloser
	f *os.File
}

func (r *fileReader) Close() error {
	return errors.Join(r.ReadCloser.Close(), r.f.Close())
}

type fileWriter struct {
	io.WriteCloser
	f *os.File
}

func (w *fileWriter) Close() error {
	return errors.Join(w.WriteCloser.Close(), w.f.Close())
}
