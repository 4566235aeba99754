package ops

import "github.com/deeptape-ml/deeptape/internal/tape"

// Sub emits Left - Right.
//
// Backward pass:
//   - d(a-b)/da = 1, so the left contribution is delta
//   - d(a-b)/db = -1, so the right contribution is -delta
type Sub[DIn, DeltaIn any] struct {
	Left, Right ScalarLayer[DIn, DeltaIn]
}

// Forward evaluates both operands against in and emits their difference.
func (s Sub[DIn, DeltaIn]) Forward(in tape.Tape[DIn, DeltaIn]) (Scalar, error) {
	return binary(in, s.Left, s.Right,
		func(l, r float64) float64 { return l - r },
		func(_, _, delta float64) float64 { return delta },
		func(_, _, delta float64) float64 { return -delta },
		"sub")
}
