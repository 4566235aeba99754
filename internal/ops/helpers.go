package ops

import "github.com/deeptape-ml/deeptape/internal/tape"

// unary evaluates child against in and wraps the result. deriv maps
// the child's value and the downstream delta to the child's
// contribution; it runs lazily, only when the child is trainable.
func unary[DIn, DeltaIn any](
	in tape.Tape[DIn, DeltaIn],
	child ScalarLayer[DIn, DeltaIn],
	eval func(x float64) float64,
	deriv func(x, delta float64) float64,
	label string,
) (Scalar, error) {
	xt, err := child.Forward(in)
	if err != nil {
		return nil, err
	}
	x := xt.Value()
	if !xt.Trainable() {
		return tape.Constant[float64, float64](eval(x),
			tape.WithOwned(xt), tape.WithLabel(label)), nil
	}
	return tape.New(eval(x), func(delta float64) error {
		return tape.Backward(xt, func() float64 { return deriv(x, delta) })
	}, tape.WithOwned(xt), tape.WithLabel(label)), nil
}

// binary evaluates left then right against in. dLeft and dRight map
// the operand values and the downstream delta to each child's
// contribution; each runs lazily and each child's backward is invoked
// exactly once, left before right.
func binary[DIn, DeltaIn any](
	in tape.Tape[DIn, DeltaIn],
	left, right ScalarLayer[DIn, DeltaIn],
	eval func(l, r float64) float64,
	dLeft func(l, r, delta float64) float64,
	dRight func(l, r, delta float64) float64,
	label string,
) (Scalar, error) {
	lt, err := left.Forward(in)
	if err != nil {
		return nil, err
	}
	rt, err := right.Forward(in)
	if err != nil {
		lt.Close()
		return nil, err
	}
	l, r := lt.Value(), rt.Value()
	if !lt.Trainable() && !rt.Trainable() {
		return tape.Constant[float64, float64](eval(l, r),
			tape.WithOwned(lt, rt), tape.WithLabel(label)), nil
	}
	return tape.New(eval(l, r), func(delta float64) error {
		if err := tape.Backward(lt, func() float64 { return dLeft(l, r, delta) }); err != nil {
			return err
		}
		return tape.Backward(rt, func() float64 { return dRight(l, r, delta) })
	}, tape.WithOwned(lt, rt), tape.WithLabel(label)), nil
}
