package tabulatedfunction

import (
	"math"
	"strconv"
)

// Epsilon is the relative tolerance used by every comparison of x values.
const Epsilon = 1e-9

// Point is one (x, y) sample of a tabulated function.
type Point struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
}

func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Clone returns a copy of p.
func (p Point) Clone() Point {
	return Point{X: p.X, Y: p.Y}
}

// SameX reports whether x equals p.X within Epsilon.
func (p Point) SameX(x float64) bool {
	return sameX(p.X, x)
}

// Equal compares points by x only.
func (p Point) Equal(q Point) bool {
	return sameX(p.X, q.X)
}

func (p Point) String() string {
	return "(" + formatFloat(p.X) + ", " + formatFloat(p.Y) + ")"
}

func sameX(a, b float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= Epsilon*scale
}

// before reports whether a lies strictly left of b.
func before(a, b float64) bool {
	return a < b && !sameX(a, b)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
