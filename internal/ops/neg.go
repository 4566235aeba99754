package ops

import "github.com/deeptape-ml/deeptape/internal/tape"

// Neg emits -X.
//
// Backward pass: d(-x)/dx = -1, so the contribution is -delta.
type Neg[DIn, DeltaIn any] struct {
	X ScalarLayer[DIn, DeltaIn]
}

// Forward evaluates the operand against in and emits its negation.
func (n Neg[DIn, DeltaIn]) Forward(in tape.Tape[DIn, DeltaIn]) (Scalar, error) {
	return unary(in, n.X,
		func(x float64) float64 { return -x },
		func(_, delta float64) float64 { return -delta },
		"neg")
}
