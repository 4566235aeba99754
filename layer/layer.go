// Copyright 2025 DeepTape Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package layer provides the static, reusable half of the computation
// graph: descriptions of differentiable computations that evaluate
// input handles into output handles.
//
// Layers are stateless per evaluation and safe to evaluate
// concurrently. See the tape package for the handle contract and the
// ops package for concrete operators.
package layer

import (
	"github.com/deeptape-ml/deeptape/internal/layer"
	"github.com/deeptape-ml/deeptape/internal/tape"
)

// Layer evaluates an input handle into an output handle.
type Layer[DIn, DeltaIn, DOut, DeltaOut any] = layer.Layer[DIn, DeltaIn, DOut, DeltaOut]

// Func adapts a function to the Layer interface.
type Func[DIn, DeltaIn, DOut, DeltaOut any] = layer.Func[DIn, DeltaIn, DOut, DeltaOut]

// Identity returns a layer whose output is a duplicate of its input.
func Identity[D, Delta any]() Layer[D, Delta, D, Delta] {
	return layer.Identity[D, Delta]()
}

// Compose builds the layer outer(inner(x)).
func Compose[DIn, DeltaIn, DMid, DeltaMid, DOut, DeltaOut any](
	outer Layer[DMid, DeltaMid, DOut, DeltaOut],
	inner Layer[DIn, DeltaIn, DMid, DeltaMid],
) Layer[DIn, DeltaIn, DOut, DeltaOut] {
	return layer.Compose(outer, inner)
}

// Tape re-exports the handle type for signatures written against this
// package alone.
type Tape[D, Delta any] = tape.Tape[D, Delta]
