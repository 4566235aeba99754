// Package layer implements the static half of the computation-graph
// contract: the reusable description of a differentiable computation.
//
// A Layer is authored once and never mutated. Forward performs no
// mutation of the layer itself; all per-evaluation state lives in the
// tape tree it returns, so one layer may be evaluated concurrently and
// independently any number of times without cross-contamination.
//
// Ownership convention: Forward borrows its input. A layer that
// retains the input handle beyond the call, or fans it out to more
// than one child, takes in.Duplicate() per consumer; the caller keeps
// ownership of the handle it passed in and closes it. The caller owns
// the returned output handle.
package layer

import "github.com/deeptape-ml/deeptape/internal/tape"

// Layer evaluates an input handle into an output handle.
//
// DIn/DeltaIn are the input tape's value and gradient shapes,
// DOut/DeltaOut the output tape's. Compatibility between composed
// layers is enforced at construction time by the type system; there is
// no runtime shape negotiation at this level.
type Layer[DIn, DeltaIn, DOut, DeltaOut any] interface {
	Forward(in tape.Tape[DIn, DeltaIn]) (tape.Tape[DOut, DeltaOut], error)
}

// Func adapts a function to the Layer interface.
type Func[DIn, DeltaIn, DOut, DeltaOut any] func(in tape.Tape[DIn, DeltaIn]) (tape.Tape[DOut, DeltaOut], error)

// Forward calls f.
func (f Func[DIn, DeltaIn, DOut, DeltaOut]) Forward(in tape.Tape[DIn, DeltaIn]) (tape.Tape[DOut, DeltaOut], error) {
	return f(in)
}

// Identity returns a layer whose output is a duplicate of its input.
// The duplicate keeps the input's value and backward behavior alive
// for the downstream consumer while leaving the caller's handle
// untouched.
func Identity[D, Delta any]() Layer[D, Delta, D, Delta] {
	return Func[D, Delta, D, Delta](func(in tape.Tape[D, Delta]) (tape.Tape[D, Delta], error) {
		return in.Duplicate(), nil
	})
}

// Compose builds the layer outer(inner(x)).
//
// Forward runs inner first, feeds its output to outer, then closes the
// intermediate handle: outer has taken duplicates of anything it needs
// beyond the call. On backward, the composite's output routes outer's
// contribution before any gradient reaches inner's output — that
// ordering is outer's obligation under the Layer contract, not
// something Compose re-checks.
func Compose[DIn, DeltaIn, DMid, DeltaMid, DOut, DeltaOut any](
	outer Layer[DMid, DeltaMid, DOut, DeltaOut],
	inner Layer[DIn, DeltaIn, DMid, DeltaMid],
) Layer[DIn, DeltaIn, DOut, DeltaOut] {
	return Func[DIn, DeltaIn, DOut, DeltaOut](func(in tape.Tape[DIn, DeltaIn]) (tape.Tape[DOut, DeltaOut], error) {
		mid, err := inner.Forward(in)
		if err != nil {
			return nil, err
		}
		out, err := outer.Forward(mid)
		mid.Close()
		if err != nil {
			return nil, err
		}
		return out, nil
	})
}
