// SPDX-License-Identifier: MIT
// Package: hopweight/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits arcs i → (i+1) mod n for i=0..n-1 in increasing order.
//
// Complexity: O(n) vertices + O(n) arcs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hopweight/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			if err := addArc(g, cfg, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
