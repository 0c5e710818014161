// SPDX-License-Identifier: MIT
// Package builder provides helper functions for arc-weight distributions.
package builder

import (
	"math/rand"
)

// DefaultEdgeWeight is the weight assigned to each arc when no WeightFn is set.
const DefaultEdgeWeight int64 = 1

// WeightFn produces an arc weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Negative values are clamped to 0: hop traversal rejects negative weights.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		value = 0
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max] inclusive.
// Bounds are clamped to ≥ 0 and swapped when reversed. With a nil rng it
// yields min, keeping unseeded builds deterministic.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 {
		min = 0
	}
	if max < 0 {
		max = 0
	}
	if max < min {
		min, max = max, min
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}
