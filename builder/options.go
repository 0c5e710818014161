// SPDX-License-Identifier: MIT
package builder

import (
	"math/rand"
)

// BuilderOption mutates a builderConfig during resolution.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID function. A nil fn is ignored.
func WithIDScheme(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithSymbolIDs names vertices "A", "B", ... (n ≤ 26).
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithPrefixIDs names vertices prefix+index, e.g. "v0", "v1".
func WithPrefixIDs(prefix string) BuilderOption { return WithIDScheme(PrefixIDFn(prefix)) }

// WithRand uses r as the random source. A nil r is ignored.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed uses a fresh random source seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the arc weight distribution. A nil fn is ignored.
func WithWeightFn(fn WeightFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

// WithConstantWeight sets every arc weight to w.
func WithConstantWeight(w int64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight draws weights uniformly from [min, max].
func WithUniformWeight(min, max int64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
