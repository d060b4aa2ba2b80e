package main

import "math/rand"

// NewRNG returns a PRNG stream seeded once from the CLI seed argument. It is
// threaded explicitly into every stochastic call (constructor, perturbation,
// benchmark workers) rather than held as package-global state, so concurrent
// benchmark workers never share a stream.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
