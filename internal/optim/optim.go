// Package optim provides weight-update rules.
//
// A rule is applied by a trainable parameter each time a gradient
// contribution reaches it, so a weight consumed by several graph
// branches is updated once per contribution. For SGD that is
// arithmetically the same as summing contributions first.
package optim

// Rule maps a parameter value and one gradient contribution to the
// updated value.
type Rule interface {
	Apply(value, grad float64) float64
}

// SGD is plain stochastic gradient descent.
//
// Update rule:
//
//	value = value - lr * grad
type SGD struct {
	LR float64 // Learning rate (default: 0.01)
}

// Apply performs one SGD update.
func (s SGD) Apply(value, grad float64) float64 {
	lr := s.LR
	if lr == 0 {
		lr = 0.01
	}
	return value - lr*grad
}

// Momentum is SGD with momentum. It carries per-parameter velocity
// state, so each weight needs its own instance.
//
// Update rule:
//
//	velocity = beta * velocity + grad
//	value    = value - lr * velocity
type Momentum struct {
	LR   float64 // Learning rate (default: 0.01)
	Beta float64 // Momentum factor, range [0, 1)

	velocity float64
}

// Apply performs one momentum-SGD update.
func (m *Momentum) Apply(value, grad float64) float64 {
	lr := m.LR
	if lr == 0 {
		lr = 0.01
	}
	m.velocity = m.Beta*m.velocity + grad
	return value - lr*m.velocity
}
