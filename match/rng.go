// SPDX-License-Identifier: MIT

// Package match - RNG utilities for restart initialization.
//
// This file centralizes deterministic random generation for the
// matching pipeline.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Independence: each restart gets its own derived stream, so restarts
//     may run concurrently without sharing RNG state.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Every restart owns the
//     *rand.Rand built by restartRNG; streams are never shared.
package match

import "math/rand"

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new
// 64-bit seed via a SplitMix64-style avalanche (Vigna 2014 constants).
// Small input changes produce large, well-distributed output changes,
// which keeps per-restart streams uncorrelated.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// restartRNG builds the independent deterministic stream for restart r.
// The zero-seed policy of rngFromSeed applies to the parent seed first,
// so WithSeed(0) and the default configuration agree.
//
// Complexity: O(1).
func restartRNG(parent int64, r int) *rand.Rand {
	p := parent
	if p == 0 {
		p = defaultRNGSeed
	}

	return rand.New(rand.NewSource(deriveSeed(p, uint64(r))))
}
