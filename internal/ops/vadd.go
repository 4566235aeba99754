package ops

import (
	"fmt"

	"github.com/deeptape-ml/deeptape/internal/pool"
	"github.com/deeptape-ml/deeptape/internal/tape"
)

// VAdd emits the element-wise sum of two equal-length vectors.
//
// Backward pass: d(a+b)/da_i = d(a+b)/db_i = 1, so the downstream
// delta flows unchanged to both operands.
type VAdd[DIn, DeltaIn any] struct {
	Left, Right VectorLayer[DIn, DeltaIn]
}

// Forward evaluates both operands against in and emits their
// element-wise sum in a pooled buffer.
func (a VAdd[DIn, DeltaIn]) Forward(in tape.Tape[DIn, DeltaIn]) (Vector, error) {
	lt, err := a.Left.Forward(in)
	if err != nil {
		return nil, err
	}
	rt, err := a.Right.Forward(in)
	if err != nil {
		lt.Close()
		return nil, err
	}
	l, r := lt.Value(), rt.Value()
	if len(l) != len(r) {
		lt.Close()
		rt.Close()
		return nil, fmt.Errorf("vadd: length mismatch %d vs %d", len(l), len(r))
	}

	buf := pool.Shared().Get(len(l))
	for i := range buf {
		buf[i] = l[i] + r[i]
	}
	opts := []tape.Option{
		tape.WithOwned(lt, rt),
		tape.WithRelease(func() { pool.Shared().Put(buf) }),
		tape.WithLabel("vadd"),
	}
	if !lt.Trainable() && !rt.Trainable() {
		return tape.Constant[[]float64, []float64](buf, opts...), nil
	}
	return tape.New(buf, func(delta []float64) error {
		if err := tape.Backward(lt, func() []float64 { return delta }); err != nil {
			return err
		}
		return tape.Backward(rt, func() []float64 { return delta })
	}, opts...), nil
}
