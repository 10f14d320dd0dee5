package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionBasics(t *testing.T) {
	impls := map[string]func(int) Partition{
		"disjoint": func(n int) Partition { return NewDisjointSet(n) },
		"linear":   func(n int) Partition { return NewLinearSets(n) },
	}
	for name, newP := range impls {
		t.Run(name, func(t *testing.T) {
			p := newP(5)
			assert.Equal(t, 5, p.Count())
			assert.True(t, p.Union(0, 1))
			assert.True(t, p.Union(3, 4))
			assert.False(t, p.Union(1, 0))
			assert.Equal(t, 3, p.Count())
			assert.Equal(t, p.Find(0), p.Find(1))
			assert.NotEqual(t, p.Find(1), p.Find(3))
			assert.True(t, p.Union(1, 4))
			assert.Equal(t, p.Find(0), p.Find(3))
			assert.Equal(t, 2, p.Count())
		})
	}
}

func TestPartitionDifferential(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const n = 64
	ds, ls := NewDisjointSet(n), NewLinearSets(n)
	for i := 0; i < 500; i++ {
		a, b := rng.Intn(n), rng.Intn(n)
		assert.Equal(t, ls.Union(a, b), ds.Union(a, b), "union(%d,%d)", a, b)
		assert.Equal(t, ls.Count(), ds.Count())
	}
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			assert.Equal(t, ls.Find(a) == ls.Find(b), ds.Find(a) == ds.Find(b))
		}
	}
}

func TestGenerateSamePartitionResult(t *testing.T) {
	a, err := Generate(9, 7, WithSeed(11))
	assert.NoError(t, err)
	b, err := Generate(9, 7, WithSeed(11), WithPartition(func(n int) Partition { return NewLinearSets(n) }))
	assert.NoError(t, err)
	assert.Equal(t, a.Walls(), b.Walls())
}
