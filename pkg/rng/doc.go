// Package rng provides a deterministic, portable pseudo-random source for
// the force-directed layout engine's position initialisation.
//
// # Overview
//
// A given seed must yield bit-exact identical output on every platform
// (the force-directed engine's determinism contract). math/rand's algorithm
// carries no such cross-version guarantee, so this package implements its
// own: a SplitMix64 seed expansion feeding a xoshiro256** generator, both
// public-domain algorithms with a fixed, fully-specified integer recurrence
// and no library-version dependence.
//
// # Usage
//
//	r := rng.New(42)
//	x := r.Uint64()
//	jitter := r.IntRange(-4, 4)
//
// # Thread Safety
//
// RNG instances are NOT thread-safe. Each goroutine (each independent
// layout call, per the core's single-threaded-per-call model) should use
// its own instance.
package rng
