// SPDX-License-Identifier: MIT
// Package: lvlath/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes fixture construction by mutating a builderConfig
// before the first constructor runs.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders and attribute
// generators. Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCost sets the generator for the AttrCost attribute of every emitted
// edge. Panics on nil.
func WithCost(fn AttrFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCost(nil)")
	}
	return func(c *builderConfig) {
		c.costFn = fn
	}
}

// WithCapacity sets the generator for the AttrCapacity attribute of every
// emitted edge. Panics on nil.
func WithCapacity(fn AttrFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCapacity(nil)")
	}
	return func(c *builderConfig) {
		c.capacityFn = fn
	}
}

// WithSupplies sets the supply assignment applied after all constructors.
// Panics on nil.
func WithSupplies(fn SupplyFn) BuilderOption {
	if fn == nil {
		panic("builder: WithSupplies(nil)")
	}
	return func(c *builderConfig) {
		c.supplyFn = fn
	}
}
