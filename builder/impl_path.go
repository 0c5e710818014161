// SPDX-License-Identifier: MIT
// Package: hopweight/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits arcs (i-1) → i for i=1..n-1 in increasing order.
//   - Weight policy: cfg.weightFn(cfg.rng) if g.Weighted() else 0.
//
// Complexity: O(n) vertices + O(n-1) arcs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hopweight/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		addVertices(g, cfg, n)
		for i := 1; i < n; i++ {
			if err := addArc(g, cfg, methodPath, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
