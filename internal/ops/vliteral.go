package ops

import (
	"github.com/deeptape-ml/deeptape/internal/pool"
	"github.com/deeptape-ml/deeptape/internal/tape"
)

// VLiteral emits a constant vector.
//
// The emitted value is a pooled copy of V, returned to the pool when
// the tape closes, so even constant vectors exercise the disposal
// discipline. The tape is untrainable.
type VLiteral[DIn, DeltaIn any] struct {
	V []float64
}

// Forward emits the constant vector. The input handle is not consumed.
func (l VLiteral[DIn, DeltaIn]) Forward(_ tape.Tape[DIn, DeltaIn]) (Vector, error) {
	buf := pool.Shared().Get(len(l.V))
	copy(buf, l.V)
	return tape.Constant[[]float64, []float64](buf,
		tape.WithRelease(func() { pool.Shared().Put(buf) }),
		tape.WithLabel("vliteral")), nil
}
