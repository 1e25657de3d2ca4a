package tabulatedfunction

// Tabulate samples fn at count evenly spaced points of [left, right], which
// must lie within the domain of fn.
func Tabulate(fn Evaluable, left, right float64, count int) (*TabulatedFunction, error) {
	if left < fn.LeftBorder() || right > fn.RightBorder() {
		return nil, invalidArgument("interval [%v, %v] is outside the domain [%v, %v]",
			left, right, fn.LeftBorder(), fn.RightBorder())
	}
	if count < 2 {
		return nil, invalidArgument("at least 2 points required, got %d", count)
	}
	if !(left < right) {
		return nil, invalidArgument("left border %v must be less than right border %v", left, right)
	}
	xs := grid(left, right, count)
	ys := make([]float64, count)
	for i, x := range xs {
		ys[i] = fn.F(x)
	}
	return NewFromValues(xs, ys)
}
