// Package random provides the seedable random source used for weight
// initialisation, shuffling, batch sampling and input noise.
package random

import "math/rand"

// Source is a uniform random generator.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64

	// Intn returns a value in [0, n). n must be positive.
	Intn(n int) int

	// IntRange returns a value in [lo, hi). hi must be greater than lo.
	IntRange(lo, hi int) int
}

// Generator is a Source backed by math/rand with a fixed seed.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator seeded with seed. Two generators with the same
// seed produce the same sequence.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

func (g *Generator) Float64() float64 {
	return g.rng.Float64()
}

func (g *Generator) Intn(n int) int {
	return g.rng.Intn(n)
}

func (g *Generator) IntRange(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo)
}
