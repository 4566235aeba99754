// Package ops provides the concrete differentiable operators built on
// the layer and tape contracts.
//
// Each operator is a Layer: Forward evaluates its children against the
// (borrowed) input handle, combines their values, and returns an output
// tape whose backward routine computes the operator's own gradient term
// before routing the derived partial to each child exactly once. An
// operator whose children are all untrainable emits an untrainable
// tape, so the short-circuit propagates through constant subgraphs.
//
// Scalar operators (float64 value, float64 gradient):
//   - Literal: constant leaf (untrainable)
//   - Weight: trainable parameter leaf, updated by an optim.Rule
//   - Add, Sub, Mul, Div: binary arithmetic
//   - Neg, Exp, Log, Sin, Cos, Tanh: unary element functions
//
// Vector operators ([]float64 value and gradient), whose value buffers
// come from the shared pool and return to it on close:
//   - VLiteral: constant vector leaf
//   - VAdd: element-wise sum
//   - VScale: scalar-by-vector product
//   - VSum: reduction to the scalar sum of elements
package ops

import (
	"github.com/deeptape-ml/deeptape/internal/layer"
	"github.com/deeptape-ml/deeptape/internal/tape"
)

// Scalar is the tape exchanged by scalar operators: float64 value,
// float64 gradient contribution.
type Scalar = tape.Tape[float64, float64]

// Vector is the tape exchanged by vector operators.
type Vector = tape.Tape[[]float64, []float64]

// ScalarLayer is a layer producing a Scalar from any input tape shape.
type ScalarLayer[DIn, DeltaIn any] = layer.Layer[DIn, DeltaIn, float64, float64]

// VectorLayer is a layer producing a Vector from any input tape shape.
type VectorLayer[DIn, DeltaIn any] = layer.Layer[DIn, DeltaIn, []float64, []float64]
