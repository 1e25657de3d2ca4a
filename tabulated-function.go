// Package tabulatedfunction models a real function as an ordered table of
// (x, y) samples and evaluates it between the samples by linear
// interpolation.
//
// A table always holds at least two points and its x values are strictly
// increasing. Every mutating method validates its arguments before touching
// the table, so a failed call leaves the table as it was.
package tabulatedfunction

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// spare slots allocated on top of the initial point count
const reserve = 10

// TabulatedFunction is an ordered table of points. The zero value holds no
// points and is not usable: only New, NewUniform, NewFromValues and the
// decoders return a valid table.
type TabulatedFunction struct {
	// p[:n] holds the table, p[n:] is free storage
	p []Point
	n int
}

// New creates a tabulated function from a copy of points, which must be
// given in strictly increasing x order.
func New(points ...Point) (*TabulatedFunction, error) {
	if len(points) < 2 {
		return nil, invalidArgument("at least 2 points required, got %d", len(points))
	}
	for i := 1; i < len(points); i++ {
		if !before(points[i-1].X, points[i].X) {
			return nil, invalidArgument("x values must be strictly increasing at index %d", i)
		}
	}
	f := alloc(len(points))
	copy(f.p, points)
	return f, nil
}

// NewUniform creates count points evenly spaced over [left, right], all
// with y = 0.
func NewUniform(left, right float64, count int) (*TabulatedFunction, error) {
	if !(left < right) {
		return nil, invalidArgument("left border %v must be less than right border %v", left, right)
	}
	if count < 2 {
		return nil, invalidArgument("at least 2 points required, got %d", count)
	}
	xs := grid(left, right, count)
	for i := 1; i < len(xs); i++ {
		if !before(xs[i-1], xs[i]) {
			return nil, invalidArgument("interval [%v, %v] too narrow for %d points", left, right, count)
		}
	}
	f := alloc(count)
	for i, x := range xs {
		f.p[i] = Point{X: x}
	}
	return f, nil
}

// NewFromValues zips parallel x and y slices into a tabulated function.
func NewFromValues(xs, ys []float64) (*TabulatedFunction, error) {
	if len(xs) != len(ys) {
		return nil, invalidArgument("length mismatch: %d x values, %d y values", len(xs), len(ys))
	}
	points := make([]Point, len(xs))
	for i := range xs {
		points[i] = Point{X: xs[i], Y: ys[i]}
	}
	return New(points...)
}

func alloc(n int) *TabulatedFunction {
	return &TabulatedFunction{
		p: make([]Point, n+reserve),
		n: n,
	}
}

// grid returns count evenly spaced values from left to right inclusive.
func grid(left, right float64, count int) []float64 {
	xs := make([]float64, count)
	step := (right - left) / float64(count-1)
	for i := range xs {
		xs[i] = left + float64(i)*step
	}
	xs[count-1] = right
	return xs
}

func (f *TabulatedFunction) table() []Point {
	return f.p[:f.n]
}

func (f *TabulatedFunction) checkIndex(i int) error {
	if i < 0 || i >= f.n {
		return &IndexError{Index: i, Count: f.n}
	}
	return nil
}

func (f *TabulatedFunction) PointCount() int {
	return f.n
}

func (f *TabulatedFunction) LeftBorder() float64 {
	return f.p[0].X
}

func (f *TabulatedFunction) RightBorder() float64 {
	return f.p[f.n-1].X
}

func (f *TabulatedFunction) PointX(i int) (float64, error) {
	if err := f.checkIndex(i); err != nil {
		return 0, err
	}
	return f.p[i].X, nil
}

func (f *TabulatedFunction) PointY(i int) (float64, error) {
	if err := f.checkIndex(i); err != nil {
		return 0, err
	}
	return f.p[i].Y, nil
}

// Point returns a copy of the i-th point.
func (f *TabulatedFunction) Point(i int) (Point, error) {
	if err := f.checkIndex(i); err != nil {
		return Point{}, err
	}
	return f.p[i].Clone(), nil
}

// Points returns a copy of the whole table.
func (f *TabulatedFunction) Points() []Point {
	return slices.Clone(f.table())
}

// F returns the linearly interpolated value at xi, or NaN when xi is
// outside [LeftBorder(), RightBorder()].
func (f *TabulatedFunction) F(xi float64) float64 {
	if !(xi >= f.LeftBorder() && xi <= f.RightBorder()) {
		return math.NaN()
	}
	t := f.table()
	k, found := slices.BinarySearchFunc(t, xi, func(p Point, x float64) int {
		switch {
		case p.X < x:
			return -1
		case p.X > x:
			return 1
		}
		return 0
	})
	if found {
		return t[k].Y
	}
	// t[k-1].X < xi < t[k].X, and 0 < k < n because xi is inside the domain
	return interpolate(t[k-1], t[k], xi)
}

func interpolate(a, b Point, x float64) float64 {
	return a.Y + (b.Y-a.Y)*(x-a.X)/(b.X-a.X)
}

// fits reports whether x may be stored at index i without breaking the
// ordering against its neighbours.
func (f *TabulatedFunction) fits(i int, x float64) error {
	if math.IsNaN(x) {
		return &PointError{X: x, Reason: "not a number"}
	}
	if i > 0 && !before(f.p[i-1].X, x) {
		return &PointError{X: x, Reason: "not greater than the left neighbour"}
	}
	if i < f.n-1 && !before(x, f.p[i+1].X) {
		return &PointError{X: x, Reason: "not less than the right neighbour"}
	}
	return nil
}

// SetPointX moves the i-th point to x, keeping its y.
func (f *TabulatedFunction) SetPointX(i int, x float64) error {
	if err := f.checkIndex(i); err != nil {
		return err
	}
	if err := f.fits(i, x); err != nil {
		return err
	}
	f.p[i].X = x
	return nil
}

func (f *TabulatedFunction) SetPointY(i int, y float64) error {
	if err := f.checkIndex(i); err != nil {
		return err
	}
	f.p[i].Y = y
	return nil
}

// SetPoint replaces the i-th point with a copy of p.
func (f *TabulatedFunction) SetPoint(i int, p Point) error {
	if err := f.checkIndex(i); err != nil {
		return err
	}
	if err := f.fits(i, p.X); err != nil {
		return err
	}
	f.p[i] = p.Clone()
	return nil
}

// place returns the index at which x belongs, or false if a point with the
// same x already exists.
func (f *TabulatedFunction) place(x float64) (int, bool) {
	for i, p := range f.table() {
		if p.SameX(x) {
			return -1, false
		}
		if p.X > x {
			return i, true
		}
	}
	return f.n, true
}

// AddPoint inserts a copy of p at its place in the table. The domain grows
// when p lies outside the current borders.
func (f *TabulatedFunction) AddPoint(p Point) error {
	if math.IsNaN(p.X) {
		return &PointError{X: p.X, Reason: "not a number"}
	}
	i, ok := f.place(p.X)
	if !ok {
		return &PointError{X: p.X, Reason: "a point with this x already exists"}
	}
	if f.n == len(f.p) {
		f.grow()
	}
	copy(f.p[i+1:f.n+1], f.p[i:f.n])
	f.p[i] = p.Clone()
	f.n++
	return nil
}

// grow doubles the storage.
func (f *TabulatedFunction) grow() {
	p := make([]Point, max(2*len(f.p), reserve))
	copy(p, f.table())
	f.p = p
}

// DeletePoint removes the i-th point. A table never shrinks below two
// points.
func (f *TabulatedFunction) DeletePoint(i int) error {
	if err := f.checkIndex(i); err != nil {
		return err
	}
	if f.n < 3 {
		return fmt.Errorf("cannot delete from a table of %d points: %w", f.n, ErrIllegalState)
	}
	copy(f.p[i:f.n-1], f.p[i+1:f.n])
	f.n--
	f.p[f.n] = Point{}
	return nil
}

// Clone returns an independent copy of f.
func (f *TabulatedFunction) Clone() *TabulatedFunction {
	return &TabulatedFunction{
		p: slices.Clone(f.p),
		n: f.n,
	}
}

func (f *TabulatedFunction) Ymin() float64 {
	m := f.p[0].Y
	for _, p := range f.table()[1:] {
		if p.Y < m {
			m = p.Y
		}
	}
	return m
}

func (f *TabulatedFunction) Ymax() float64 {
	m := f.p[0].Y
	for _, p := range f.table()[1:] {
		if p.Y > m {
			m = p.Y
		}
	}
	return m
}

// Step returns the smallest distance between two neighbouring x values.
func (f *TabulatedFunction) Step() float64 {
	t := f.table()
	step := t[1].X - t[0].X
	for i := 2; i < len(t); i++ {
		if d := t[i].X - t[i-1].X; d < step {
			step = d
		}
	}
	return step
}

// Integrate returns the integral of f over its domain.
func (f *TabulatedFunction) Integrate() float64 {
	var sum float64
	t := f.table()
	for i := 1; i < len(t); i++ {
		sum += (t[i].X - t[i-1].X) * (t[i].Y + t[i-1].Y) / 2
	}
	return sum
}

// MorePoints inserts the interpolated midpoint of every segment.
// Segments too short to hold a distinct midpoint are left alone.
func (f *TabulatedFunction) MorePoints() {
	t := f.table()
	newP := make([]Point, 0, 2*len(t)-1+reserve)
	newP = append(newP, t[0])
	for i := 1; i < len(t); i++ {
		p1, p2 := t[i-1], t[i]
		midX := (p1.X + p2.X) / 2
		if before(p1.X, midX) && before(midX, p2.X) {
			newP = append(newP, Point{X: midX, Y: interpolate(p1, p2, midX)})
		}
		newP = append(newP, p2)
	}
	f.n = len(newP)
	f.p = newP[:cap(newP)]
}

// Scale multiplies every y value by the factor by.
func (f *TabulatedFunction) Scale(by float64) {
	for i := range f.table() {
		f.p[i].Y *= by
	}
}

func (f *TabulatedFunction) String() string {
	var b strings.Builder
	b.WriteString("{ ")
	for i, p := range f.table() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString(" }")
	return b.String()
}
