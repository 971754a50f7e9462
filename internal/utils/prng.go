// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps the standard generator so that every random decision in
// the simulation (spawn positions, crit rolls, drops, upgrade offers) comes
// from one seedable source. A fixed seed replays a match deterministically.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a service with the given seed.
// Seed 0 falls back to the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a random int in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a random float in [min, max).
func (s *PRNGService) Range(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// Chance returns true with probability p.
func (s *PRNGService) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// Bool returns true with probability 0.5.
func (s *PRNGService) Bool() bool {
	return s.rng.Intn(2) == 0
}

// PickIndices samples up to count distinct indices from [0, n) without
// replacement. Used for rogue upgrade offers.
func (s *PRNGService) PickIndices(n, count int) []int {
	if count > n {
		count = n
	}
	perm := s.rng.Perm(n)
	return perm[:count]
}
