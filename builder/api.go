// SPDX-License-Identifier: MIT
// Package: lvlath/builder
//
// api.go - public entry-point for network fixtures.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg,
//     runs cons in order, then assigns supplies when WithSupplies is set.
//   - Constructors are implemented in impl_*.go.
//   - Determinism: same inputs, options, seed and constructor order give identical networks.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath-simplex/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early, respect the graph's
// mode flags and attach the configured cost and capacity attributes to every
// edge they emit.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, applies all constructors in order and
// finally writes node supplies (attribute AttrSupply) if a SupplyFn is set.
//
// Errors wrap the constructor's error with "BuildGraph: %w"; branch with
// errors.Is against ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource
// or ErrConstructFailed.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	if cfg.supplyFn != nil {
		if err := assignSupplies(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// assignSupplies hands the sorted vertex list to cfg.supplyFn and stores the
// returned values. Vertices missing from the result keep no supply attribute.
func assignSupplies(g *core.Graph, cfg builderConfig) error {
	ids := g.Vertices()
	supplies := cfg.supplyFn(cfg.rng, ids)
	for _, id := range ids {
		s, ok := supplies[id]
		if !ok {
			continue
		}
		if err := g.SetVertexAttr(id, AttrSupply, s); err != nil {
			return fmt.Errorf("%s: SetVertexAttr(%s): %w", methodSupplies, id, err)
		}
	}
	return nil
}

// Topology factories, implemented in impl_*.go:
//
//	Path(n)            P_n, edges i -> i+1                       (n ≥ 2)
//	Cycle(n)           C_n, edges i -> (i+1)%n                   (n ≥ 3)
//	Complete(n)        K_n, every pair (ordered pairs if directed) (n ≥ 1)
//	Grid(rows, cols)   4-neighborhood grid with IDs "r,c"        (rows, cols ≥ 1)
//	RandomSparse(n, p) Erdős–Rényi G(n, p); needs an RNG for 0 < p < 1
