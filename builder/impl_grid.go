// SPDX-License-Identifier: MIT
// Package: lvlath/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   - 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   - Vertex IDs use the fixed scheme "r,c" (row-major order), an exception
//     to cfg.idFn that keeps coordinates explicit.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - For each cell in row-major order emit Right then Bottom where present.
//     In directed graphs the reverse arc follows each forward arc so flow can
//     move both ways.
//
// Complexity: O(rows*cols) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath-simplex/core"
)

const (
	methodGrid   = "Grid"
	minGridDim   = 1
	gridIDFormat = "%d,%d"
)

// Grid returns a Constructor that builds a rows×cols 4-neighborhood grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := cellID(r, c)
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id, err)
				}
			}
		}

		directed := g.Directed()
		link := func(u, v string) error {
			if err := addArc(g, cfg, methodGrid, u, v); err != nil {
				return err
			}
			if directed {
				return addArc(g, cfg, methodGrid, v, u)
			}
			return nil
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := cellID(r, c)
				if c+1 < cols {
					if err := link(u, cellID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(u, cellID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}

func cellID(r, c int) string {
	return fmt.Sprintf(gridIDFormat, r, c)
}
