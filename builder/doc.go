// Package builder produces deterministic flow-network fixtures for tests,
// examples and benchmarks.
//
// A fixture is a *core.Graph whose edges carry integer "cost" and
// "capacity" attributes and whose vertices carry a "supply" attribute, the
// keys the simplex engine reads by default.
//
// Components:
//
//   - BuildGraph(gopts, bopts, cons...): creates the graph, runs the
//     constructors in order, then assigns supplies.
//   - Constructors: Path, Cycle, Complete, Grid, RandomSparse.
//   - Options: WithSeed / WithRand (RNG), WithIDScheme and friends (vertex
//     IDs), WithCost / WithCapacity (AttrFn per edge), WithSupplies (SupplyFn
//     over the finished vertex set).
//   - Generators: ConstantAttrFn, UniformAttrFn, BalancedSupplyFn,
//     FixedSupplyFn.
//
// Graph direction comes from the core options, e.g.
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithDirected(true)},
//		[]builder.BuilderOption{
//			builder.WithSeed(7),
//			builder.WithCost(builder.UniformAttrFn(1, 9)),
//			builder.WithCapacity(builder.UniformAttrFn(1, 5)),
//			builder.WithSupplies(builder.BalancedSupplyFn(4)),
//		},
//		builder.RandomSparse(12, 0.3),
//	)
//
// Guarantees: identical inputs and seed give identical graphs, attributes
// included. Constructors return sentinel errors and never panic; option and
// generator factories panic on meaningless arguments.
package builder
