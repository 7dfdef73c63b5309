// Package bigm implements exact "big-M" arithmetic for the network simplex engine.
//
// A Value represents the number
//
//	Finite + Infinite·M
//
// where M is a symbolic constant that is larger than any finite quantity the
// solver will ever produce. M is never materialized: every comparison looks at
// the Infinite component first and only falls back to Finite on a tie, so
//
//	(1000000, 0) < (0, 1) < (5, 1) < (0, 2)
//
// This is how the solver keeps "still infeasible" apart from "optimal with a
// large real cost" without floating-point drift.
//
// Range contract:
//
//	The representation is exact as long as neither component overflows int64.
//	Real costs, potentials and flow·cost products must stay well below
//	math.MaxInt64 / 2; the engine never checks this bound at runtime.
//
// Value has plain value semantics. The in-place combinators (Add, Sub, Neg,
// ScaledAdd) take a pointer receiver; every other method is a pure query.
package bigm
