package tabulatedfunction

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"os"
)

// The binary form is a big-endian int32 point count followed by the x and
// y of every point as big-endian IEEE-754 doubles, in table order.

// WriteBinary writes f to w in binary form.
func WriteBinary(w io.Writer, f *TabulatedFunction) error {
	bw := bufio.NewWriter(w)
	var buf [16]byte
	binary.BigEndian.PutUint32(buf[:4], uint32(int32(f.PointCount())))
	if _, err := bw.Write(buf[:4]); err != nil {
		return err
	}
	for _, p := range f.table() {
		binary.BigEndian.PutUint64(buf[:8], math.Float64bits(p.X))
		binary.BigEndian.PutUint64(buf[8:], math.Float64bits(p.Y))
		if _, err := bw.Write(buf[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadBinary reads a tabulated function in binary form from r.
func ReadBinary(r io.Reader) (*TabulatedFunction, error) {
	var buf [16]byte
	if _, err := io.ReadFull(r, buf[:4]); err != nil {
		return nil, decodeError("reading point count", unexpected(err))
	}
	n := int32(binary.BigEndian.Uint32(buf[:4]))
	if n < 2 {
		return nil, decodeError("point count %d", nil, n)
	}
	// the count is not trusted for preallocation
	xs := make([]float64, 0, min(int(n), 1024))
	ys := make([]float64, 0, min(int(n), 1024))
	for i := 0; i < int(n); i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, decodeError("reading point %d of %d", unexpected(err), i, n)
		}
		xs = append(xs, math.Float64frombits(binary.BigEndian.Uint64(buf[:8])))
		ys = append(ys, math.Float64frombits(binary.BigEndian.Uint64(buf[8:])))
	}
	f, err := NewFromValues(xs, ys)
	if err != nil {
		return nil, decodeError("invalid table", err)
	}
	return f, nil
}

// unexpected turns a clean EOF in the middle of a record into
// io.ErrUnexpectedEOF.
func unexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// SaveBinary writes f to the named file in binary form.
func SaveBinary(path string, f *TabulatedFunction) error {
	return save(path, f, WriteBinary)
}

// LoadBinary reads a tabulated function from the named binary file.
func LoadBinary(path string) (*TabulatedFunction, error) {
	return load(path, ReadBinary)
}

func save(path string, f *TabulatedFunction, write func(io.Writer, *TabulatedFunction) error) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(out, f); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func load(path string, read func(io.Reader) (*TabulatedFunction, error)) (*TabulatedFunction, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	return read(bufio.NewReader(in))
}
