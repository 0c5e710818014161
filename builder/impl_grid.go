// SPDX-License-Identifier: MIT
// Package: hopweight/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1, cols ≥ 1 and rows*cols ≥ 2 (else ErrTooFewVertices).
//   - Vertex IDs are "r,c" (row-major), independent of cfg.idFn.
//   - For each cell in row-major order emits the right arc, then the down arc.
//
// Complexity: O(R*C) vertices + O(2*R*C) arcs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hopweight/core"
)

const (
	methodGrid  = "Grid"
	minGridSide = 1
	minGridSize = 2
)

// GridID returns the vertex ID of cell (r, c).
func GridID(r, c int) string {
	return fmt.Sprintf("%d,%d", r, c)
}

// Grid returns a Constructor that builds a rows×cols 4-neighborhood grid
// whose arcs point right and down.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if rows < minGridSide || cols < minGridSide || rows*cols < minGridSize {
			return fmt.Errorf("%s: %dx%d below %d cells: %w", methodGrid, rows, cols, minGridSize, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				g.AddVertex(GridID(r, c))
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addArc(g, cfg, methodGrid, GridID(r, c), GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addArc(g, cfg, methodGrid, GridID(r, c), GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
