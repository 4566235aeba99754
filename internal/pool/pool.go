// Package pool manages reusable float64 buffers for vector-valued
// tapes, reducing allocation churn across training iterations.
//
// Buffers are categorized by element count. A vector tape acquires its
// value buffer here and returns it through its close hook, which is
// what gives vector handles a real resource behind their disposal
// discipline.
package pool

import "sync"

// Size categories for pooled buffers.
const (
	smallThreshold  = 1024      // elements
	mediumThreshold = 64 * 1024 // elements
	maxPoolSize     = 100       // max buffers retained per category
)

// Pool manages float64 buffer reuse, categorized by size.
type Pool struct {
	mu sync.Mutex

	small  [][]float64
	medium [][]float64
	large  [][]float64

	hits   uint64
	misses uint64
}

// New creates an empty pool.
func New() *Pool {
	return &Pool{
		small:  make([][]float64, 0, maxPoolSize),
		medium: make([][]float64, 0, maxPoolSize),
		large:  make([][]float64, 0, maxPoolSize),
	}
}

func (p *Pool) class(n int) *[][]float64 {
	switch {
	case n < smallThreshold:
		return &p.small
	case n < mediumThreshold:
		return &p.medium
	default:
		return &p.large
	}
}

// Get returns a zeroed buffer of length n, reusing a pooled one when a
// large enough buffer is available in n's size category.
func (p *Pool) Get(n int) []float64 {
	p.mu.Lock()
	class := p.class(n)
	for i, buf := range *class {
		if cap(buf) >= n {
			last := len(*class) - 1
			(*class)[i] = (*class)[last]
			*class = (*class)[:last]
			p.hits++
			p.mu.Unlock()

			buf = buf[:n]
			for j := range buf {
				buf[j] = 0
			}
			return buf
		}
	}
	p.misses++
	p.mu.Unlock()
	return make([]float64, n)
}

// Put returns a buffer to the pool. Buffers beyond the per-category
// retention limit are dropped for the garbage collector.
func (p *Pool) Put(buf []float64) {
	if cap(buf) == 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	class := p.class(cap(buf))
	if len(*class) >= maxPoolSize {
		return
	}
	*class = append(*class, buf[:cap(buf)])
}

// Stats returns the cumulative hit and miss counts.
func (p *Pool) Stats() (hits, misses uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hits, p.misses
}

var shared = New()

// Shared returns the process-wide pool used by the vector operators.
func Shared() *Pool {
	return shared
}
