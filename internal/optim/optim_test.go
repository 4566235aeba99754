package optim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deeptape-ml/deeptape/internal/optim"
)

// TestSGD_Apply tests the plain SGD update.
func TestSGD_Apply(t *testing.T) {
	s := optim.SGD{LR: 0.1}
	assert.InDelta(t, 0.9, s.Apply(1.0, 1.0), 1e-12)
	assert.InDelta(t, 1.2, s.Apply(1.0, -2.0), 1e-12)
}

// TestSGD_DefaultLR tests that a zero learning rate falls back to the
// default.
func TestSGD_DefaultLR(t *testing.T) {
	s := optim.SGD{}
	assert.InDelta(t, 0.99, s.Apply(1.0, 1.0), 1e-12)
}

// TestMomentum_Apply tests velocity accumulation across updates.
func TestMomentum_Apply(t *testing.T) {
	m := &optim.Momentum{LR: 0.1, Beta: 0.9}

	v := m.Apply(1.0, 1.0) // velocity = 1.0
	assert.InDelta(t, 0.9, v, 1e-12)
	v = m.Apply(v, 1.0) // velocity = 1.9
	assert.InDelta(t, 0.71, v, 1e-12)
}
