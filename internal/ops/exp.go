package ops

import (
	"math"

	"github.com/deeptape-ml/deeptape/internal/tape"
)

// Exp emits e^X.
//
// Backward pass: d(e^x)/dx = e^x, so the contribution is e^x * delta.
type Exp[DIn, DeltaIn any] struct {
	X ScalarLayer[DIn, DeltaIn]
}

// Forward evaluates the operand against in and emits its exponential.
func (e Exp[DIn, DeltaIn]) Forward(in tape.Tape[DIn, DeltaIn]) (Scalar, error) {
	return unary(in, e.X, math.Exp,
		func(x, delta float64) float64 { return math.Exp(x) * delta },
		"exp")
}
