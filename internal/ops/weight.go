package ops

import (
	"sync"

	"github.com/deeptape-ml/deeptape/internal/optim"
	"github.com/deeptape-ml/deeptape/internal/tape"
)

// Weight is a trainable scalar parameter.
//
// Forward emits a trainable tape over the current value; each gradient
// contribution routed into that tape hands value and gradient to the
// update rule. A weight consumed by several graph branches receives one
// update per contribution — for plain SGD that is arithmetically the
// same as summing contributions before a single update.
//
// Weight is the one layer with cross-evaluation state (the parameter
// itself); the mutex makes concurrent evaluations and updates safe.
type Weight[DIn, DeltaIn any] struct {
	mu    sync.Mutex
	value float64
	rule  optim.Rule
}

// NewWeight creates a weight initialized to v, updated by rule.
func NewWeight[DIn, DeltaIn any](v float64, rule optim.Rule) *Weight[DIn, DeltaIn] {
	return &Weight[DIn, DeltaIn]{value: v, rule: rule}
}

// Value returns the current parameter value.
func (w *Weight[DIn, DeltaIn]) Value() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.value
}

// Forward emits the parameter as a trainable tape. The input handle is
// not consumed.
func (w *Weight[DIn, DeltaIn]) Forward(_ tape.Tape[DIn, DeltaIn]) (Scalar, error) {
	w.mu.Lock()
	v := w.value
	w.mu.Unlock()
	return tape.New(v, func(delta float64) error {
		w.mu.Lock()
		w.value = w.rule.Apply(w.value, delta)
		w.mu.Unlock()
		return nil
	}, tape.WithLabel("weight")), nil
}
