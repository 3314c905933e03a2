package rng

import "math/rand"

// Seeded is a math/rand backed generator with a fixed seed.
// This should only be used by tests that need reproducible sequences.
type Seeded struct {
	r *rand.Rand
}

// NewSeeded returns a new seeded generator
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		r: rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// Intn will return a random number up to but not including n
func (s *Seeded) Intn(n int) int {
	return s.r.Intn(n)
}
