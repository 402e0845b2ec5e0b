package vecio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	gojson "github.com/goccy/go-json"

	"github.com/hupe1980/proxgo"
)

// Format is the element encoding of a vector file.
type Format uint8

const (
	// FormatJSON is a flat JSON array of numbers.
	FormatJSON Format = iota
	// FormatBinary is the binary layout described on binaryMagic.
	FormatBinary
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatBinary:
		return "binary"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(f))
	}
}

// Binary layout:
//
//	[magic "PXV1"][kind uint8][3 reserved bytes][count uint64][count elements, little-endian]
var binaryMagic = [4]byte{'P', 'X', 'V', '1'}

const (
	binaryHeaderSize = 16
	// maxBinaryElements caps the element count a header may declare.
	maxBinaryElements = 1 << 28
	// binaryChunk is the number of elements read per step. The output grows
	// with the bytes actually read, not with the declared count.
	binaryChunk = 1 << 16
)

// FormatFromPath derives the encoding from path, ignoring a trailing
// compression extension.
func FormatFromPath(path string) Format {
	if CompressionFromPath(path) != CompressionNone {
		path = strings.TrimSuffix(path, filepath.Ext(path))
	}
	if strings.EqualFold(filepath.Ext(path), ".bin") {
		return FormatBinary
	}
	return FormatJSON
}

// Decode reads one vector from r.
//
// For FormatJSON kind selects the element type. For FormatBinary the header
// carries the kind; a non-zero kind that differs from it fails with
// proxgo.ErrTypeMismatch.
func Decode(r io.Reader, f Format, kind proxgo.Kind) (proxgo.Vector, error) {
	switch f {
	case FormatJSON:
		return decodeJSON(r, kind)
	case FormatBinary:
		return decodeBinary(r, kind)
	default:
		return nil, fmt.Errorf("%w: format %s", ErrUnsupported, f)
	}
}

// Encode writes v to w.
func Encode(w io.Writer, f Format, v proxgo.Vector) error {
	switch f {
	case FormatJSON:
		if err := gojson.NewEncoder(w).Encode(v); err != nil {
			return fmt.Errorf("vecio: encode json: %w", err)
		}
		return nil
	case FormatBinary:
		return encodeBinary(w, v)
	default:
		return fmt.Errorf("%w: format %s", ErrUnsupported, f)
	}
}

func decodeJSON(r io.Reader, kind proxgo.Kind) (proxgo.Vector, error) {
	var values []float64
	if err := gojson.NewDecoder(r).Decode(&values); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	switch kind {
	case proxgo.Float64:
		return proxgo.Float64Vector(values), nil
	case proxgo.Float32:
		out := make(proxgo.Float32Vector, len(values))
		for i, v := range values {
			f := float32(v)
			if math.IsInf(float64(f), 0) {
				return nil, fmt.Errorf("%w: element %d overflows float32", ErrFormat, i)
			}
			out[i] = f
		}
		return out, nil
	default:
		return nil, &proxgo.ArgumentError{Op: "decode", Name: "kind", Value: kind}
	}
}

func decodeBinary(r io.Reader, kind proxgo.Kind) (proxgo.Vector, error) {
	var header [binaryHeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrFormat, err)
	}
	if [4]byte(header[:4]) != binaryMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrFormat, header[:4])
	}

	stored := proxgo.Kind(header[4])
	if kind != 0 && kind != stored {
		return nil, &proxgo.KindError{Op: "decode", Want: kind, Got: stored}
	}

	count := binary.LittleEndian.Uint64(header[8:])
	if count > maxBinaryElements {
		return nil, fmt.Errorf("%w: %d elements exceeds limit", ErrFormat, count)
	}

	br := bufio.NewReader(r)

	switch stored {
	case proxgo.Float32:
		out, err := readElements[float32](br, count)
		if err != nil {
			return nil, err
		}
		return proxgo.Float32Vector(out), nil
	case proxgo.Float64:
		out, err := readElements[float64](br, count)
		if err != nil {
			return nil, err
		}
		return proxgo.Float64Vector(out), nil
	default:
		return nil, fmt.Errorf("%w: element kind %s", ErrFormat, stored)
	}
}

// readElements reads count little-endian elements in binaryChunk steps.
func readElements[T float32 | float64](r io.Reader, count uint64) ([]T, error) {
	out := make([]T, 0, min(count, binaryChunk))
	chunk := make([]T, min(count, binaryChunk))

	for remaining := count; remaining > 0; {
		n := min(remaining, binaryChunk)
		if err := binary.Read(r, binary.LittleEndian, chunk[:n]); err != nil {
			return nil, fmt.Errorf("%w: body: %v", ErrFormat, err)
		}
		out = append(out, chunk[:n]...)
		remaining -= n
	}
	return out, nil
}

func encodeBinary(w io.Writer, v proxgo.Vector) error {
	var header [binaryHeaderSize]byte
	copy(header[:4], binaryMagic[:])
	header[4] = byte(v.Kind())
	binary.LittleEndian.PutUint64(header[8:], uint64(v.Len()))

	bw := bufio.NewWriter(w)
	if _, err := bw.Write(header[:]); err != nil {
		return fmt.Errorf("vecio: write header: %w", err)
	}

	var body any
	switch x := v.(type) {
	case proxgo.Float32Vector:
		body = []float32(x)
	case proxgo.Float64Vector:
		body = []float64(x)
	default:
		return fmt.Errorf("%w: vector type %T", ErrUnsupported, v)
	}
	if err := binary.Write(bw, binary.LittleEndian, body); err != nil {
		return fmt.Errorf("vecio: write body: %w", err)
	}
	return bw.Flush()
}
