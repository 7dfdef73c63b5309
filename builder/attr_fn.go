// SPDX-License-Identifier: MIT
// Package: lvlath/builder
//
// attr_fn.go - attribute generators for edges (cost, capacity) and vertices (supply).
//
// Contract:
//   - Generators are deterministic for a given RNG state.
//   - A nil RNG yields a documented deterministic fallback, never a panic.
//   - Factories panic on meaningless parameters (programmer error).

package builder

import (
	"fmt"
	"math/rand"
)

// Attribute keys written by the builder. They match the simplex defaults.
const (
	AttrCost     = "cost"
	AttrCapacity = "capacity"
	AttrSupply   = "supply"
)

const methodSupplies = "Supplies"

// AttrFn produces one integer edge attribute from an optional RNG.
type AttrFn func(rng *rand.Rand) int64

// SupplyFn maps the sorted vertex IDs of a finished graph to supplies.
type SupplyFn func(rng *rand.Rand, ids []string) map[string]int64

// ConstantAttrFn always yields value.
func ConstantAttrFn(value int64) AttrFn {
	return func(*rand.Rand) int64 { return value }
}

// UniformAttrFn samples uniformly in [min, max]. A nil RNG yields min.
// Panics if max < min.
func UniformAttrFn(min, max int64) AttrFn {
	if max < min {
		panic(fmt.Sprintf("UniformAttrFn: require min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}
		return min + rng.Int63n(max-min+1)
	}
}

// BalancedSupplyFn draws every supply but the last uniformly in
// [-maxAbs, maxAbs]; the last vertex takes whatever makes the total zero.
// A nil RNG alternates +maxAbs and -maxAbs. Panics if maxAbs < 0.
func BalancedSupplyFn(maxAbs int64) SupplyFn {
	if maxAbs < 0 {
		panic(fmt.Sprintf("BalancedSupplyFn: maxAbs must be ≥ 0, got %d", maxAbs))
	}
	return func(rng *rand.Rand, ids []string) map[string]int64 {
		out := make(map[string]int64, len(ids))
		if len(ids) == 0 {
			return out
		}
		var sum int64
		for i, id := range ids[:len(ids)-1] {
			var s int64
			switch {
			case rng != nil:
				s = rng.Int63n(2*maxAbs+1) - maxAbs
			case i%2 == 0:
				s = maxAbs
			default:
				s = -maxAbs
			}
			out[id] = s
			sum += s
		}
		out[ids[len(ids)-1]] = -sum
		return out
	}
}

// FixedSupplyFn assigns the given supplies verbatim; vertices absent from
// supplies are left untouched.
func FixedSupplyFn(supplies map[string]int64) SupplyFn {
	return func(_ *rand.Rand, ids []string) map[string]int64 {
		out := make(map[string]int64, len(supplies))
		for _, id := range ids {
			if s, ok := supplies[id]; ok {
				out[id] = s
			}
		}
		return out
	}
}
