package ops

import (
	"math"

	"github.com/deeptape-ml/deeptape/internal/tape"
)

// Log emits the natural logarithm of X.
//
// Backward pass: d(log x)/dx = 1/x, so the contribution is delta / x.
//
// Note: input values must be positive; a non-positive input produces
// NaN/-Inf in the forward value, exactly as math.Log does.
type Log[DIn, DeltaIn any] struct {
	X ScalarLayer[DIn, DeltaIn]
}

// Forward evaluates the operand against in and emits its logarithm.
func (l Log[DIn, DeltaIn]) Forward(in tape.Tape[DIn, DeltaIn]) (Scalar, error) {
	return unary(in, l.X, math.Log,
		func(x, delta float64) float64 { return delta / x },
		"log")
}
