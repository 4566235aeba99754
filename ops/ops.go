// Copyright 2025 DeepTape Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ops provides the concrete differentiable operators.
//
// Example:
//
//	// model(x) = a*sin(x) + b
//	type S = float64 // input is a scalar tape
//	a := ops.NewWeight[S, S](1.0, optim.SGD{LR: 0.05})
//	b := ops.NewWeight[S, S](0.0, optim.SGD{LR: 0.05})
//	model := ops.Add[S, S]{
//	    Left:  ops.Mul[S, S]{Left: a, Right: ops.Sin[S, S]{X: layer.Identity[S, S]()}},
//	    Right: b,
//	}
package ops

import (
	"github.com/deeptape-ml/deeptape/internal/ops"
	"github.com/deeptape-ml/deeptape/internal/optim"
)

// Scalar is the tape exchanged by scalar operators.
type Scalar = ops.Scalar

// Vector is the tape exchanged by vector operators.
type Vector = ops.Vector

// ScalarLayer is a layer producing a Scalar from any input tape shape.
type ScalarLayer[DIn, DeltaIn any] = ops.ScalarLayer[DIn, DeltaIn]

// VectorLayer is a layer producing a Vector from any input tape shape.
type VectorLayer[DIn, DeltaIn any] = ops.VectorLayer[DIn, DeltaIn]

// Literal emits a constant scalar.
type Literal[DIn, DeltaIn any] = ops.Literal[DIn, DeltaIn]

// Weight is a trainable scalar parameter.
type Weight[DIn, DeltaIn any] = ops.Weight[DIn, DeltaIn]

// NewWeight creates a weight initialized to v, updated by rule.
func NewWeight[DIn, DeltaIn any](v float64, rule optim.Rule) *Weight[DIn, DeltaIn] {
	return ops.NewWeight[DIn, DeltaIn](v, rule)
}

// Add emits Left + Right.
type Add[DIn, DeltaIn any] = ops.Add[DIn, DeltaIn]

// Sub emits Left - Right.
type Sub[DIn, DeltaIn any] = ops.Sub[DIn, DeltaIn]

// Mul emits Left * Right.
type Mul[DIn, DeltaIn any] = ops.Mul[DIn, DeltaIn]

// Div emits Left / Right.
type Div[DIn, DeltaIn any] = ops.Div[DIn, DeltaIn]

// Neg emits -X.
type Neg[DIn, DeltaIn any] = ops.Neg[DIn, DeltaIn]

// Exp emits e^X.
type Exp[DIn, DeltaIn any] = ops.Exp[DIn, DeltaIn]

// Log emits the natural logarithm of X.
type Log[DIn, DeltaIn any] = ops.Log[DIn, DeltaIn]

// Sin emits sin(X).
type Sin[DIn, DeltaIn any] = ops.Sin[DIn, DeltaIn]

// Cos emits cos(X).
type Cos[DIn, DeltaIn any] = ops.Cos[DIn, DeltaIn]

// Tanh emits tanh(X).
type Tanh[DIn, DeltaIn any] = ops.Tanh[DIn, DeltaIn]

// VLiteral emits a constant vector backed by a pooled buffer.
type VLiteral[DIn, DeltaIn any] = ops.VLiteral[DIn, DeltaIn]

// VAdd emits the element-wise sum of two vectors.
type VAdd[DIn, DeltaIn any] = ops.VAdd[DIn, DeltaIn]

// VScale emits K * X, scaling a vector by a scalar.
type VScale[DIn, DeltaIn any] = ops.VScale[DIn, DeltaIn]

// VSum reduces a vector to the scalar sum of its elements.
type VSum[DIn, DeltaIn any] = ops.VSum[DIn, DeltaIn]
