package dataset

// Intn is the random source used for shuffling.
//
// *math/rand.Rand satisfies it.
type Intn interface {
	Intn(n int) int
}

// Permutation returns a uniformly random permutation of [0, n).
//
// Fisher-Yates: position j is swapped with j + rng.Intn(n-j), so position j
// is final once visited. The result is always a bijection on [0, n).
func Permutation(rng Intn, n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for j := 0; j < n; j++ {
		k := j + rng.Intn(n-j)
		idx[j], idx[k] = idx[k], idx[j]
	}
	return idx
}
