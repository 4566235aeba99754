package tape

import (
	"sync/atomic"

	"github.com/deeptape-ml/deeptape/internal/resource"
)

// cell is the shared state behind a handle and all its duplicates.
// The reference count tracks outstanding handles; upstream handles and
// the release hook run exactly once, when the count drops to zero.
type cell[D, Delta any] struct {
	value    D
	backward func(Delta) error // nil for untrainable cells
	refs     atomic.Int32
	owned    []Closer
	release  func()
	label    string
}

func (c *cell[D, Delta]) retain() {
	c.refs.Add(1)
}

func (c *cell[D, Delta]) drop() {
	if c.refs.Add(-1) != 0 {
		return
	}
	for _, o := range c.owned {
		o.Close()
	}
	if c.release != nil {
		c.release()
	}
}

// handle pairs the shared cell with a per-handle disposal token.
// Duplicates get fresh tokens over the same cell.
type handle[D, Delta any] struct {
	cell  *cell[D, Delta]
	token *resource.Token
}

// Option configures a tape at construction.
type Option func(*options)

type options struct {
	owned   []Closer
	release func()
	label   string
}

// WithOwned ties upstream handles to the new tape: they are closed,
// each exactly once, when the last handle over the tape's cell closes.
func WithOwned(owned ...Closer) Option {
	return func(o *options) {
		o.owned = append(o.owned, owned...)
	}
}

// WithRelease registers fn to run when the last handle closes, after
// owned upstream handles have been closed. Use it to return pooled or
// native buffers backing the value.
func WithRelease(fn func()) Option {
	return func(o *options) {
		o.release = fn
	}
}

// WithLabel names the tape in disposal-discipline diagnostics.
func WithLabel(label string) Option {
	return func(o *options) {
		o.label = label
	}
}

func build[D, Delta any](value D, backward func(Delta) error, opts []Option) *handle[D, Delta] {
	o := options{label: "tape"}
	for _, opt := range opts {
		opt(&o)
	}
	c := &cell[D, Delta]{
		value:    value,
		backward: backward,
		owned:    o.owned,
		release:  o.release,
		label:    o.label,
	}
	c.refs.Store(1)
	return &handle[D, Delta]{cell: c, token: resource.NewToken(o.label)}
}

// New creates a trainable tape over value. backward is the
// variant-specific routine: it receives every gradient contribution
// routed through Backward, once per contribution, and is shared by all
// duplicates of the tape.
func New[D, Delta any](value D, backward func(Delta) error, opts ...Option) Tape[D, Delta] {
	return build(value, backward, opts)
}

// Constant creates an untrainable tape. Backward on it is a guaranteed
// no-op that never evaluates its delta thunk. Owned handles and the
// release hook still run at close, so constants participate in the
// disposal discipline like any other tape.
func Constant[D, Delta any](value D, opts ...Option) Tape[D, Delta] {
	return build[D, Delta](value, nil, opts)
}

func (h *handle[D, Delta]) Value() D {
	return h.cell.value
}

func (h *handle[D, Delta]) Trainable() bool {
	return h.cell.backward != nil
}

func (h *handle[D, Delta]) Push(delta Delta) error {
	if h.cell.backward == nil {
		return nil
	}
	return h.cell.backward(delta)
}

func (h *handle[D, Delta]) Duplicate() Tape[D, Delta] {
	h.cell.retain()
	return &handle[D, Delta]{cell: h.cell, token: resource.NewToken(h.cell.label)}
}

func (h *handle[D, Delta]) Close() {
	if !h.token.Close() {
		// Double close: reported by the token; the cell keeps its
		// count so other handles stay valid.
		return
	}
	h.cell.drop()
}
