// SPDX-License-Identifier: MIT
// Package: hopweight/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - Requires cfg.rng when 0 < p < 1 (else ErrNeedRandSource).
//   - Directed graphs try every ordered pair (i, j), i asc then j asc;
//     undirected graphs try j > i only. Self-pairs are tried only when loops
//     are allowed.
//
// Complexity: O(n) vertices + O(n²) Bernoulli trials.
//
// Determinism: fixed trial order ⇒ identical graphs for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hopweight/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n vertices with independent arc probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		addVertices(g, cfg, n)

		loops := g.Looped()
		directed := g.Directed()
		for i := 0; i < n; i++ {
			start := 0
			if !directed {
				start = i
			}
			for j := start; j < n; j++ {
				if i == j && !loops {
					continue
				}
				if !include(cfg, p) {
					continue
				}
				if err := addArc(g, cfg, methodRandomSparse, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// include runs one Bernoulli trial; p ∈ {0, 1} never touches the RNG.
func include(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	}

	return cfg.rng.Float64() < p
}
