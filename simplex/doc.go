// Package simplex implements a dynamic minimum-cost-flow engine based on the
// network simplex method.
//
// The engine keeps a basic feasible solution as a spanning tree rooted at a
// synthetic node, stored with parent/thread/depth pointers. Every node owns an
// artificial arc to the root with cost exactly M (see package bigm), so a
// basis always exists regardless of connectivity; a solution that still
// routes flow through artificial arcs once no pivot improves it is reported
// as Infeasible.
//
// Lifecycle:
//
//	eng := simplex.New(simplex.WithPricing(simplex.FirstNegative))
//	if err := eng.Init(g); err != nil { ... }   // snapshot of *core.Graph
//	status, _ := eng.Compute()                  // Optimal, Infeasible or Unbounded
//	cancel := g.Subscribe(func(ev core.Event) { _ = eng.Apply(ev) })
//	...                                         // mutate g, then Compute again
//	eng.Terminate()
//
// Graph mapping:
//
//   - node supply    = attribute "supply"   (absent or non-numeric: 0)
//   - edge capacity  = attribute "capacity" (absent, negative or non-numeric: Unlimited)
//   - edge cost      = attribute "cost"     (absent or non-numeric: default 1)
//   - a directed edge yields one arc keyed by the edge ID; an undirected edge
//     yields a forward arc and an independent reverse arc sharing cost and
//     capacity but not flow.
//
// Edge IDs starting with ReservedPrefix are rejected with ErrReservedID.
//
// Pivoting uses a strongly feasible basis: ties in the leaving-arc ratio test
// pick the last blocking arc along the cycle orientation, which rules out
// cycling under degeneracy for any pricing rule.
//
// Mutations (AddNode, RemoveNode, AddEdge, RemoveEdge, SetSupply,
// SetCapacity, SetCost, or Apply with a core.Event) patch the tree in place
// with at most a few forced pivots and set the status to Undefined when the
// basis may no longer be optimal. The next Compute resumes from there.
//
// Termination: pivots keep a strongly feasible basis strongly feasible, but
// a mutation may leave one that is only feasible. If Compute then meets a run
// of degenerate pivots longer than twice the number of nodes and arcs, it
// rebuilds the big-M cold start once (Stats.Restarts) and continues from
// that strongly feasible basis.
//
// Concurrency: an Engine has no internal locking. Serialize Apply, Compute
// and every query on one instance.
//
// Range: bigm values hold M-coefficients and real parts in separate int64s,
// so Σ|cost|·Σ|supply| must stay below 2^63.
package simplex
