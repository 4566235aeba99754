// Package tape implements the runtime half of the computation-graph
// contract: the evaluation handle produced by running a layer forward.
//
// A Tape carries the computed value and the machinery to route a
// gradient contribution back through the subgraph that produced it.
// Gradient injection always goes through Backward, which short-circuits
// on untrainable handles so constant branches never pay for gradient
// work — the delta is supplied as a thunk and is not evaluated unless
// the handle is trainable.
//
// Handles are disposable resources: every handle, original or
// duplicate, must be closed exactly once, on every exit path. The
// underlying computation is shared by reference count and released when
// the last handle over it closes. See the resource package for the
// debug-mode leak and double-close diagnostics.
//
// Example:
//
//	out, err := net.Forward(in)
//	if err != nil {
//	    return err
//	}
//	defer out.Close()
//
//	loss := out.Value()
//	err = tape.Backward(out, func() float64 { return 1 })
package tape

// Tape is the record of one evaluation.
//
// A tape is produced by exactly one forward call, accepts at most one
// gradient accumulation per logical consumer, and is closed exactly
// once. Closed is terminal: no Value, Backward, Duplicate or Push call
// is valid afterwards. The contract does not defend against use after
// close; that is a caller obligation, surfaced only by debug
// diagnostics.
type Tape[D, Delta any] interface {
	// Value returns the computed result. Pure; stable for the life of
	// the handle.
	Value() D

	// Trainable reports whether gradient injection has any effect.
	// Fixed at construction. When false, Backward is a guaranteed
	// no-op and never evaluates its delta thunk.
	Trainable() bool

	// Duplicate returns a second handle sharing this one's value and
	// backward behavior. Original and duplicate are independently
	// disposable: each must be closed exactly once, and closing one
	// does not invalidate the other.
	Duplicate() Tape[D, Delta]

	// Close releases this handle's claim on the underlying
	// computation. The computation's real resources are released when
	// the last outstanding handle over it closes.
	Close()

	// Push is the variant-specific backward routine. It is invoked by
	// Backward after the trainable check; callers route gradients
	// through Backward, never Push directly.
	Push(delta Delta) error
}

// Backward injects a gradient contribution into t. This is the only
// entry point for gradient flow.
//
// The delta thunk is evaluated once, and only when t is trainable;
// untrainable handles return nil without touching it. Any error from
// the backward routine propagates unwrapped.
func Backward[D, Delta any](t Tape[D, Delta], delta func() Delta) error {
	if !t.Trainable() {
		return nil
	}
	return t.Push(delta())
}

// Closer is the disposal half of a Tape, used to tie upstream handles
// to the output that owns them.
type Closer interface {
	Close()
}
