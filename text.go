package tabulatedfunction

import (
	"bufio"
	"io"
	"math"
	"strconv"
)

// The text form is the decimal point count followed by the x and y of
// every point, each preceded by a single space. Numbers use the shortest
// representation that parses back to the same float64.

// WriteText writes f to w in text form.
func WriteText(w io.Writer, f *TabulatedFunction) error {
	bw := bufio.NewWriter(w)
	buf := strconv.AppendInt(nil, int64(f.PointCount()), 10)
	for _, p := range f.table() {
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, p.X, 'g', -1, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, p.Y, 'g', -1, 64)
		if len(buf) > 4096 {
			if _, err := bw.Write(buf); err != nil {
				return err
			}
			buf = buf[:0]
		}
	}
	if _, err := bw.Write(buf); err != nil {
		return err
	}
	return bw.Flush()
}

// ReadText reads a tabulated function in text form from r. Tokens are
// separated by any amount of white space; anything after the last y value
// is ignored.
func ReadText(r io.Reader) (*TabulatedFunction, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	next := func(what string, i int) (float64, error) {
		if !sc.Scan() {
			err := sc.Err()
			if err == nil {
				err = io.ErrUnexpectedEOF
			}
			return 0, decodeError("missing %s %d", err, what, i)
		}
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return 0, decodeError("%s %d", err, what, i)
		}
		return v, nil
	}

	c, err := next("point count", 0)
	if err != nil {
		return nil, err
	}
	if c != math.Trunc(c) || c < 2 || c > math.MaxInt32 {
		return nil, decodeError("point count %v", nil, c)
	}
	n := int(c)
	xs := make([]float64, 0, min(n, 1024))
	ys := make([]float64, 0, min(n, 1024))
	for i := 0; i < n; i++ {
		x, err := next("x value", i)
		if err != nil {
			return nil, err
		}
		y, err := next("y value", i)
		if err != nil {
			return nil, err
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	f, err := NewFromValues(xs, ys)
	if err != nil {
		return nil, decodeError("invalid table", err)
	}
	return f, nil
}

// SaveText writes f to the named file in text form.
func SaveText(path string, f *TabulatedFunction) error {
	return save(path, f, WriteText)
}

// LoadText reads a tabulated function from the named text file.
func LoadText(path string) (*TabulatedFunction, error) {
	return load(path, ReadText)
}
