package pool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deeptape-ml/deeptape/internal/pool"
)

// TestPool_Reuse tests that a returned buffer is handed back out for
// a same-category request.
func TestPool_Reuse(t *testing.T) {
	p := pool.New()

	a := p.Get(100)
	assert.Len(t, a, 100)
	a[0] = 42
	p.Put(a)

	b := p.Get(100)
	assert.Len(t, b, 100)
	assert.Same(t, &a[0], &b[0], "expected the pooled buffer back")
	assert.Equal(t, 0.0, b[0], "pooled buffer must come back zeroed")

	hits, misses := p.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)
}

// TestPool_MissOnEmpty tests that an empty pool allocates.
func TestPool_MissOnEmpty(t *testing.T) {
	p := pool.New()

	buf := p.Get(10)
	assert.Len(t, buf, 10)

	hits, misses := p.Stats()
	assert.Equal(t, uint64(0), hits)
	assert.Equal(t, uint64(1), misses)
}

// TestPool_SizeCategories tests that a small request does not consume
// a buffer parked in a larger category.
func TestPool_SizeCategories(t *testing.T) {
	p := pool.New()

	big := p.Get(100_000)
	p.Put(big)

	small := p.Get(8)
	assert.Len(t, small, 8)

	hits, _ := p.Stats()
	assert.Equal(t, uint64(0), hits, "small request must not hit the large category")
}

// TestPool_TooSmallBufferSkipped tests that a pooled buffer with
// insufficient capacity is left in place.
func TestPool_TooSmallBufferSkipped(t *testing.T) {
	p := pool.New()

	p.Put(make([]float64, 8))
	buf := p.Get(512)
	assert.Len(t, buf, 512)

	hits, misses := p.Stats()
	assert.Equal(t, uint64(0), hits)
	assert.Equal(t, uint64(1), misses)
}
