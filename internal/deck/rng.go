package deck

import "math/rand/v2"

// RNG abstracts the randomness source used for shuffling so tests can be
// deterministic. *rand.Rand satisfies it.
type RNG interface {
	// IntN returns a non-negative random int in [0, n).
	IntN(n int) int
}

// processRNG delegates to the auto-seeded math/rand/v2 source.
type processRNG struct{}

func (processRNG) IntN(n int) int { return rand.IntN(n) }

func source(rng RNG) RNG {
	if rng == nil {
		return processRNG{}
	}
	return rng
}

// Seeded returns a reproducible source for seed.
func Seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
