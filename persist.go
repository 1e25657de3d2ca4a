package tabulatedfunction

import (
	"encoding/json"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Dump is a serializable representation of a TabulatedFunction.
type Dump struct {
	Points []Point `json:"points" msgpack:"points"`
}

// FromDump restores a tabulated function from a dump. The points are
// validated exactly as by New.
func FromDump(d *Dump) (*TabulatedFunction, error) {
	return New(d.Points...)
}

// Dump generates a serializable dump for a tabulated function.
func (f *TabulatedFunction) Dump() *Dump {
	return &Dump{
		Points: f.Points(),
	}
}

// MarshalJSON implements the json.Marshaler interface for TabulatedFunction.
// JSON has no NaN or infinities, so a table holding a non-finite value
// fails with a *json.UnsupportedValueError; use WriteBinary for such tables.
func (f *TabulatedFunction) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Dump())
}

// UnmarshalJSON implements the json.Unmarshaler interface for TabulatedFunction.
// Unsorted or duplicate points are rejected and leave f unchanged, and
// null is a no-op.
func (f *TabulatedFunction) UnmarshalJSON(bytes []byte) error {
	if string(bytes) == "null" {
		return nil
	}
	var dump Dump
	if err := json.Unmarshal(bytes, &dump); err != nil {
		return err
	}
	g, err := FromDump(&dump)
	if err != nil {
		return decodeError("invalid table", err)
	}
	*f = *g
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder: an array of 2n floats
// holding the x and y of every point.
func (f *TabulatedFunction) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2 * f.n); err != nil {
		return err
	}
	for _, p := range f.table() {
		if err := enc.EncodeFloat64(p.X); err != nil {
			return err
		}
		if err := enc.EncodeFloat64(p.Y); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (f *TabulatedFunction) DecodeMsgpack(dec *msgpack.Decoder) error {
	l, err := dec.DecodeArrayLen()
	if err != nil {
		return decodeError("reading array length", err)
	}
	if l < 4 || l%2 != 0 {
		return decodeError("array length %d", nil, l)
	}
	var xs, ys []float64
	for i := 0; i < l/2; i++ {
		x, err := dec.DecodeFloat64()
		if err != nil {
			return decodeError("reading x value %d", err, i)
		}
		y, err := dec.DecodeFloat64()
		if err != nil {
			return decodeError("reading y value %d", err, i)
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	g, err := NewFromValues(xs, ys)
	if err != nil {
		return decodeError("invalid table", err)
	}
	*f = *g
	return nil
}

// WriteMsgpack writes f to w as MessagePack.
func WriteMsgpack(w io.Writer, f *TabulatedFunction) error {
	encoder := msgpack.NewEncoder(w)
	return f.EncodeMsgpack(encoder)
}

// ReadMsgpack reads a tabulated function written by WriteMsgpack.
func ReadMsgpack(r io.Reader) (*TabulatedFunction, error) {
	decoder := msgpack.NewDecoder(r)
	f := new(TabulatedFunction)
	if err := f.DecodeMsgpack(decoder); err != nil {
		return nil, err
	}
	return f, nil
}
