// SPDX-License-Identifier: MIT
// Package: lvlath/builder
//
// helpers.go - shared emission helpers for constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath-simplex/core"
)

// addVertices inserts n vertices named by cfg.idFn and returns their IDs in
// index order.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}
	return ids, nil
}

// addArc emits u -> v with freshly drawn cost/capacity attributes. The edge
// takes the graph's default direction.
func addArc(g *core.Graph, cfg builderConfig, method, u, v string) error {
	if _, err := g.AddEdge(u, v, core.WithEdgeAttrs(cfg.edgeAttrs())); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, u, v, err)
	}
	return nil
}
