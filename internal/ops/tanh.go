package ops

import (
	"math"

	"github.com/deeptape-ml/deeptape/internal/tape"
)

// Tanh emits tanh(X).
//
// Backward pass: d(tanh x)/dx = 1 - tanh²(x), so the contribution is
// (1 - tanh²(x)) * delta.
type Tanh[DIn, DeltaIn any] struct {
	X ScalarLayer[DIn, DeltaIn]
}

// Forward evaluates the operand against in and emits its hyperbolic
// tangent.
func (t Tanh[DIn, DeltaIn]) Forward(in tape.Tape[DIn, DeltaIn]) (Scalar, error) {
	return unary(in, t.X, math.Tanh,
		func(x, delta float64) float64 {
			y := math.Tanh(x)
			return (1 - y*y) * delta
		},
		"tanh")
}
