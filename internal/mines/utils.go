package mines

import (
	"hash/maphash"
	"math/rand/v2"
)

func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// sample picks k distinct values from [0, n).
func sample(n, k int, r *rand.Rand) []int {
	candidates := make([]int, n)
	for i := range candidates {
		candidates[i] = i
	}
	picked := make([]int, 0, k)
	for range k {
		i := r.IntN(n)
		picked = append(picked, candidates[i])
		n--
		candidates[i] = candidates[n]
	}
	return picked
}
