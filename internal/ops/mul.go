package ops

import "github.com/deeptape-ml/deeptape/internal/tape"

// Mul emits Left * Right.
//
// Backward pass:
//   - d(a*b)/da = b, so the left contribution is b * delta
//   - d(a*b)/db = a, so the right contribution is a * delta
type Mul[DIn, DeltaIn any] struct {
	Left, Right ScalarLayer[DIn, DeltaIn]
}

// Forward evaluates both operands against in and emits their product.
func (m Mul[DIn, DeltaIn]) Forward(in tape.Tape[DIn, DeltaIn]) (Scalar, error) {
	return binary(in, m.Left, m.Right,
		func(l, r float64) float64 { return l * r },
		func(_, r, delta float64) float64 { return r * delta },
		func(l, _, delta float64) float64 { return l * delta },
		"mul")
}
