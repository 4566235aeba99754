package ops

import "github.com/deeptape-ml/deeptape/internal/tape"

// Literal emits a constant scalar: output = V.
//
// The emitted tape is untrainable, so gradient work is skipped for any
// branch it terminates.
type Literal[DIn, DeltaIn any] struct {
	V float64
}

// Forward emits the constant. The input handle is not consumed.
func (l Literal[DIn, DeltaIn]) Forward(_ tape.Tape[DIn, DeltaIn]) (Scalar, error) {
	return tape.Constant[float64, float64](l.V, tape.WithLabel("literal")), nil
}
