// SPDX-License-Identifier: MIT
// Package: lvlath/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Undirected graphs: one edge per unordered pair {i,j}, i<j, in
//     lexicographic (i,j) order.
//   - Directed graphs: one arc per ordered pair (i,j), i≠j, in lexicographic
//     order, so every pair is joined both ways.
//
// Complexity: O(n^2) edges, O(n) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath-simplex/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodComplete, n)
		if err != nil {
			return err
		}

		directed := g.Directed()
		for i := 0; i < n; i++ {
			start := i + 1
			if directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j {
					continue
				}
				if err = addArc(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
