// Package shortest answers one-to-all shortest-path queries on a mutable
// *core.Graph by running the simplex engine on a derived flow problem.
//
// The source supplies n-1 units and every other node demands one. Arcs are
// uncapacitated and cost their length. In an optimal basis each reachable
// node receives its unit along exactly one tree arc, so following those arcs
// backwards spells out a shortest path, and the potential drop from the
// source is its length. A node that only an artificial arc can feed is
// unreachable and reports Infinity.
//
//	sp := shortest.New()
//	_ = sp.SetSource("depot")
//	_ = sp.Init(g)
//	cancel := g.Subscribe(func(ev core.Event) { _ = sp.Apply(ev) })
//	d, _ := sp.PathLength("store")
//	p, _ := sp.Path("store")
//
// Queries compute lazily after any mutation. Lengths may be negative; a
// negative cycle anywhere in the graph makes every query fail with
// ErrNegativeCycle. With non-negative lengths and a source set before Init,
// the engine starts from a Dijkstra tree and needs no pivots.
//
// Removing the source node clears the source; queries then fail with
// ErrNoSource until SetSource names a new one.
package shortest
