package tabulatedfunction

import "math"

// Evaluable is a real function defined on [LeftBorder(), RightBorder()].
// F returns NaN for arguments outside the domain.
type Evaluable interface {
	LeftBorder() float64
	RightBorder() float64
	F(x float64) float64
}

// Func adapts a plain function with a closed domain to Evaluable.
type Func struct {
	Left, Right float64
	Fn          func(float64) float64
}

func (f Func) LeftBorder() float64 {
	return f.Left
}

func (f Func) RightBorder() float64 {
	return f.Right
}

func (f Func) F(x float64) float64 {
	if !(x >= f.Left && x <= f.Right) {
		return math.NaN()
	}
	return f.Fn(x)
}
