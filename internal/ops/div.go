package ops

import "github.com/deeptape-ml/deeptape/internal/tape"

// Div emits Left / Right.
//
// Backward pass:
//   - d(a/b)/da = 1/b, so the left contribution is delta / b
//   - d(a/b)/db = -a/b², so the right contribution is -a * delta / b²
type Div[DIn, DeltaIn any] struct {
	Left, Right ScalarLayer[DIn, DeltaIn]
}

// Forward evaluates both operands against in and emits their quotient.
func (d Div[DIn, DeltaIn]) Forward(in tape.Tape[DIn, DeltaIn]) (Scalar, error) {
	return binary(in, d.Left, d.Right,
		func(l, r float64) float64 { return l / r },
		func(_, r, delta float64) float64 { return delta / r },
		func(l, r, delta float64) float64 { return -l * delta / (r * r) },
		"div")
}
