package ops

import "github.com/deeptape-ml/deeptape/internal/tape"

// VSum reduces a vector to the scalar sum of its elements.
//
// Backward pass: d(Σx)/dx_i = 1, so the upstream delta is the scalar
// delta broadcast across the input length.
type VSum[DIn, DeltaIn any] struct {
	X VectorLayer[DIn, DeltaIn]
}

// Forward evaluates the operand against in and emits the sum of its
// elements.
func (s VSum[DIn, DeltaIn]) Forward(in tape.Tape[DIn, DeltaIn]) (Scalar, error) {
	xt, err := s.X.Forward(in)
	if err != nil {
		return nil, err
	}
	x := xt.Value()
	total := 0.0
	for _, v := range x {
		total += v
	}
	n := len(x)
	if !xt.Trainable() {
		return tape.Constant[float64, float64](total,
			tape.WithOwned(xt), tape.WithLabel("vsum")), nil
	}
	return tape.New(total, func(delta float64) error {
		return tape.Backward(xt, func() []float64 {
			g := make([]float64, n)
			for i := range g {
				g[i] = delta
			}
			return g
		})
	}, tape.WithOwned(xt), tape.WithLabel("vsum")), nil
}
