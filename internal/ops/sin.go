package ops

import (
	"math"

	"github.com/deeptape-ml/deeptape/internal/tape"
)

// Sin emits sin(X).
//
// Backward pass: d(sin x)/dx = cos x, so the contribution is cos(x) * delta.
type Sin[DIn, DeltaIn any] struct {
	X ScalarLayer[DIn, DeltaIn]
}

// Forward evaluates the operand against in and emits its sine.
func (s Sin[DIn, DeltaIn]) Forward(in tape.Tape[DIn, DeltaIn]) (Scalar, error) {
	return unary(in, s.X, math.Sin,
		func(x, delta float64) float64 { return math.Cos(x) * delta },
		"sin")
}
