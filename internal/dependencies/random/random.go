package random

import "math/rand"

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// Perm returns a random permutation of [0, n), used for sampling
	// positions without replacement
	Perm(n int) []int
}

// Seeded implements Random with an instance-owned math/rand stream.
// Two Seeded instances built from the same seed produce identical
// sequences; instances never interfere with each other or with the
// process-global generator.
type Seeded struct {
	rng *rand.Rand
}

// New creates a Seeded random stream from the given seed
func New(seed int64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a random int in [0, n)
func (r *Seeded) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.Intn(n)
}

// Perm returns a random permutation of [0, n)
func (r *Seeded) Perm(n int) []int {
	if n <= 0 {
		return nil
	}
	return r.rng.Perm(n)
}
