package poisson

import (
	"math"
	"sync"
	"sync/atomic"
)

// MaxExactFactorial is the largest n whose factorial is finite in float64
const MaxExactFactorial = 170

// FactorialTable is an append-only memo of n!. Readers never lock: they load an
// immutable snapshot. Extensions are serialized and published copy-on-write, so a
// value once stored never changes.
type FactorialTable struct {
	mu     sync.Mutex
	values atomic.Pointer[[]float64]
}

// NewFactorialTable creates a table seeded with 0! and 1!
func NewFactorialTable() *FactorialTable {
	t := &FactorialTable{}
	seed := []float64{1, 1}
	t.values.Store(&seed)
	return t
}

// Factorial returns n!, +Inf past MaxExactFactorial and NaN for negative n
func (t *FactorialTable) Factorial(n int) float64 {
	switch {
	case n < 0:
		return math.NaN()
	case n > MaxExactFactorial:
		return math.Inf(1)
	}
	if v := *t.values.Load(); n < len(v) {
		return v[n]
	}
	return t.extend(n)
}

// Len returns how many factorials are memoized
func (t *FactorialTable) Len() int {
	return len(*t.values.Load())
}

func (t *FactorialTable) extend(n int) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	cur := *t.values.Load()
	if n < len(cur) {
		return cur[n]
	}
	next := make([]float64, n+1)
	copy(next, cur)
	for i := len(cur); i <= n; i++ {
		next[i] = next[i-1] * float64(i)
	}
	t.values.Store(&next)
	return next[n]
}
