// SPDX-License-Identifier: MIT
// Package: hopweight/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Center is the fixed ID "Center"; leaves use cfg.idFn(1..n-1).
//   - Emits arcs Center → leaf in increasing leaf index.
//
// Complexity: O(n) vertices + O(n-1) arcs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hopweight/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2

	// Center is the fixed ID of the hub vertex in Star.
	Center = "Center"
)

// Star returns a Constructor that builds a star with hub Center and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		g.AddVertex(Center)
		for i := 1; i < n; i++ {
			if err := addArc(g, cfg, methodStar, Center, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
