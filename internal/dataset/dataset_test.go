package dataset

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXOR(t *testing.T) {
	rows := XOR()
	require.Len(t, rows, 4)

	for _, ex := range rows {
		a, b := ex.Input[0] != 0, ex.Input[1] != 0
		want := 0.0
		if a != b {
			want = 1
		}
		assert.Equal(t, want, ex.Target[0], "row %v", ex)
	}

	// Callers get an independent copy.
	rows[0].Target[0] = 42
	assert.Equal(t, 0.0, XOR()[0].Target[0])
}

func TestPermutation_Bijection(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for k := 0; k < 500; k++ {
		perm := Permutation(rng, 4)
		sorted := append([]int(nil), perm...)
		sort.Ints(sorted)
		require.Equal(t, []int{0, 1, 2, 3}, sorted, "perm %v", perm)
	}
}

func TestPermutation_CoversAllOrders(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	seen := map[[4]int]int{}

	for k := 0; k < 5000; k++ {
		perm := Permutation(rng, 4)
		seen[[4]int(perm)]++
	}

	assert.Len(t, seen, 24)
	for order, count := range seen {
		assert.Greater(t, count, 100, "order %v", order)
	}
}

func TestPermutation_Edges(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	assert.Empty(t, Permutation(rng, 0))
	assert.Equal(t, []int{0}, Permutation(rng, 1))
}

func TestPermutation_Seeded(t *testing.T) {
	a := Permutation(rand.New(rand.NewSource(9)), 4)
	b := Permutation(rand.New(rand.NewSource(9)), 4)
	assert.Equal(t, a, b)
}
