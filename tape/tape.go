// Copyright 2025 DeepTape Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tape provides evaluation handles: the runtime records
// produced by running a layer forward.
//
// A Tape carries a computed value, routes gradient contributions
// through Backward (with a guaranteed short-circuit on untrainable
// handles), and is a disposable resource: every handle, original or
// duplicate, must be closed exactly once.
//
// Example:
//
//	import (
//	    "github.com/deeptape-ml/deeptape/layer"
//	    "github.com/deeptape-ml/deeptape/tape"
//	)
//
//	func step(net layer.Layer[float64, float64, float64, float64], x float64) (float64, error) {
//	    in := tape.Constant[float64, float64](x)
//	    defer in.Close()
//
//	    out, err := net.Forward(in)
//	    if err != nil {
//	        return 0, err
//	    }
//	    defer out.Close()
//
//	    loss := out.Value()
//	    return loss, tape.Backward(out, func() float64 { return 1 })
//	}
package tape

import "github.com/deeptape-ml/deeptape/internal/tape"

// Tape is the record of one evaluation.
type Tape[D, Delta any] = tape.Tape[D, Delta]

// Option configures a tape at construction.
type Option = tape.Option

// Closer is the disposal half of a Tape.
type Closer = tape.Closer

// New creates a trainable tape over value with the given backward
// routine.
func New[D, Delta any](value D, backward func(Delta) error, opts ...Option) Tape[D, Delta] {
	return tape.New(value, backward, opts...)
}

// Constant creates an untrainable tape; Backward on it never evaluates
// its delta thunk.
func Constant[D, Delta any](value D, opts ...Option) Tape[D, Delta] {
	return tape.Constant[D, Delta](value, opts...)
}

// Backward injects a gradient contribution into t. The delta thunk is
// evaluated only when t is trainable.
func Backward[D, Delta any](t Tape[D, Delta], delta func() Delta) error {
	return tape.Backward(t, delta)
}

// WithOwned ties upstream handles to a new tape; they are closed when
// the last handle over the tape closes.
func WithOwned(owned ...Closer) Option {
	return tape.WithOwned(owned...)
}

// WithRelease registers fn to run when the last handle closes.
func WithRelease(fn func()) Option {
	return tape.WithRelease(fn)
}

// WithLabel names the tape in disposal-discipline diagnostics.
func WithLabel(label string) Option {
	return tape.WithLabel(label)
}
