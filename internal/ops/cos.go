package ops

import (
	"math"

	"github.com/deeptape-ml/deeptape/internal/tape"
)

// Cos emits cos(X).
//
// Backward pass: d(cos x)/dx = -sin x, so the contribution is -sin(x) * delta.
type Cos[DIn, DeltaIn any] struct {
	X ScalarLayer[DIn, DeltaIn]
}

// Forward evaluates the operand against in and emits its cosine.
func (c Cos[DIn, DeltaIn]) Forward(in tape.Tape[DIn, DeltaIn]) (Scalar, error) {
	return unary(in, c.X, math.Cos,
		func(x, delta float64) float64 { return -math.Sin(x) * delta },
		"cos")
}
