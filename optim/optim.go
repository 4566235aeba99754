// Copyright 2025 DeepTape Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides weight-update rules applied by trainable
// parameters as gradient contributions arrive.
package optim

import "github.com/deeptape-ml/deeptape/internal/optim"

// Rule maps a parameter value and one gradient contribution to the
// updated value.
type Rule = optim.Rule

// SGD is plain stochastic gradient descent: value - lr*grad.
type SGD = optim.SGD

// Momentum is SGD with momentum. Each weight needs its own instance.
type Momentum = optim.Momentum
