// SPDX-License-Identifier: MIT
// Package: lvlath/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn       = decimalID ("0","1","2",...)
//   - rng        = nil (pure/deterministic unless seeded)
//   - costFn     = nil (edges carry no cost attribute; consumers use their default)
//   - capacityFn = nil (edges carry no capacity attribute; consumers read Unlimited)
//   - supplyFn   = nil (vertices carry no supply attribute)

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn func(int) string
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Per-edge attribute generators; nil leaves the attribute unset.
	costFn     AttrFn
	capacityFn AttrFn
	// Supply assignment run once after all constructors.
	supplyFn SupplyFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: decimalID}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// edgeAttrs draws the configured attributes for one edge. Cost is drawn
// before capacity so a seed fixes both sequences.
func (c builderConfig) edgeAttrs() map[string]interface{} {
	attrs := make(map[string]interface{}, 2)
	if c.costFn != nil {
		attrs[AttrCost] = c.costFn(c.rng)
	}
	if c.capacityFn != nil {
		attrs[AttrCapacity] = c.capacityFn(c.rng)
	}
	return attrs
}

// decimalID renders an index as a base-10 string.
func decimalID(i int) string {
	return strconv.Itoa(i)
}
