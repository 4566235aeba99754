package ops

import (
	"github.com/deeptape-ml/deeptape/internal/pool"
	"github.com/deeptape-ml/deeptape/internal/tape"
)

// VScale emits K * X, scaling a vector by a scalar.
//
// Backward pass:
//   - d(k*x)/dk = x, so the scalar contribution is Σ_i delta_i * x_i
//   - d(k*x)/dx_i = k, so the vector contribution is k * delta
type VScale[DIn, DeltaIn any] struct {
	K ScalarLayer[DIn, DeltaIn]
	X VectorLayer[DIn, DeltaIn]
}

// Forward evaluates both operands against in and emits the scaled
// vector in a pooled buffer.
func (s VScale[DIn, DeltaIn]) Forward(in tape.Tape[DIn, DeltaIn]) (Vector, error) {
	kt, err := s.K.Forward(in)
	if err != nil {
		return nil, err
	}
	xt, err := s.X.Forward(in)
	if err != nil {
		kt.Close()
		return nil, err
	}
	k, x := kt.Value(), xt.Value()

	buf := pool.Shared().Get(len(x))
	for i := range buf {
		buf[i] = k * x[i]
	}
	opts := []tape.Option{
		tape.WithOwned(kt, xt),
		tape.WithRelease(func() { pool.Shared().Put(buf) }),
		tape.WithLabel("vscale"),
	}
	if !kt.Trainable() && !xt.Trainable() {
		return tape.Constant[[]float64, []float64](buf, opts...), nil
	}
	return tape.New(buf, func(delta []float64) error {
		err := tape.Backward(kt, func() float64 {
			sum := 0.0
			for i, d := range delta {
				sum += d * x[i]
			}
			return sum
		})
		if err != nil {
			return err
		}
		return tape.Backward(xt, func() []float64 {
			g := make([]float64, len(delta))
			for i, d := range delta {
				g[i] = k * d
			}
			return g
		})
	}, opts...), nil
}
