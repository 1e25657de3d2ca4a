package tabulatedfunction

import (
	"bytes"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var parabolaBinary = []byte{
	0x00, 0x00, 0x00, 0x03,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 0
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 0
	0x3f, 0xf0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 1
	0x3f, 0xf0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 1
	0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 2
	0x40, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 4
}

func TestWriteBinary(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, WriteBinary(buf, parabola(t)))
	if diff := cmp.Diff(parabolaBinary, buf.Bytes()); diff != "" {
		t.Errorf("binary form differs (-want +got):\n%s", diff)
	}
}

func TestReadBinary(t *testing.T) {
	f, err := ReadBinary(bytes.NewReader(parabolaBinary))
	require.NoError(t, err)
	unchanged(t, parabola(t).Points(), f)
}

func TestBinaryRoundTrip(t *testing.T) {
	exp := Func{Left: 0, Right: 10, Fn: math.Exp}
	f, err := Tabulate(exp, 0, 10, 11)
	require.NoError(t, err)
	require.NoError(t, f.AddPoint(Point{-0.5, math.Inf(-1)}))
	require.NoError(t, f.SetPointY(3, math.NaN()))

	buf := &bytes.Buffer{}
	require.NoError(t, WriteBinary(buf, f))
	assert.Equal(t, 4+16*12, buf.Len())

	g, err := ReadBinary(buf)
	require.NoError(t, err)
	require.Equal(t, f.PointCount(), g.PointCount())
	for i := 0; i < f.PointCount(); i++ {
		want, _ := f.Point(i)
		got, _ := g.Point(i)
		assert.Equal(t, math.Float64bits(want.X), math.Float64bits(got.X), "x %d", i)
		assert.Equal(t, math.Float64bits(want.Y), math.Float64bits(got.Y), "y %d", i)
	}
}

func TestReadBinaryErrors(t *testing.T) {
	reordered := bytes.Clone(parabolaBinary)
	copy(reordered[4:20], parabolaBinary[20:36])
	copy(reordered[20:36], parabolaBinary[4:20])

	tests := []struct {
		name  string
		data  []byte
		cause error
	}{
		{"empty", nil, io.ErrUnexpectedEOF},
		{"short count", []byte{0, 0}, io.ErrUnexpectedEOF},
		{"truncated", parabolaBinary[:len(parabolaBinary)-1], io.ErrUnexpectedEOF},
		{"missing point", parabolaBinary[:36], io.ErrUnexpectedEOF},
		{"reordered", reordered, ErrInvalidArgument},
		{"count one", []byte{0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, nil},
		{"negative count", []byte{0xff, 0xff, 0xff, 0xfd}, nil},
		{"huge count", []byte{0x7f, 0xff, 0xff, 0xff}, io.ErrUnexpectedEOF},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f, err := ReadBinary(bytes.NewReader(test.data))
			assert.Nil(t, f)
			assert.ErrorIs(t, err, ErrDecode)
			if test.cause != nil {
				assert.ErrorIs(t, err, test.cause)
			}
		})
	}
}

func TestBinaryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log_function.bin")
	log := Func{Left: 1e-300, Right: math.Inf(1), Fn: math.Log}
	f, err := Tabulate(log, 1, 10, 10)
	require.NoError(t, err)

	require.NoError(t, SaveBinary(path, f))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.EqualValues(t, 4+16*10, info.Size())

	g, err := LoadBinary(path)
	require.NoError(t, err)
	unchanged(t, f.Points(), g)

	_, err = LoadBinary(filepath.Join(t.TempDir(), "missing.bin"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
