// SPDX-License-Identifier: MIT
// Package builder defines the resolved configuration shared by every
// constructor.
package builder

import (
	"math/rand"
)

// builderConfig is the immutable snapshot produced by newBuilderConfig.
//
//   - idFn:     maps a zero-based index to a vertex ID.
//   - rng:      random source for stochastic constructors; nil unless WithSeed/WithRand.
//   - weightFn: draws an arc weight; only consulted for weighted graphs.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn
}

// newBuilderConfig resolves opts over the defaults: decimal IDs, no RNG and
// constant weight DefaultEdgeWeight.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
