// Package flow implements maximum-flow algorithms on networks stored in a
// *core.Graph. It serves as an independent feasibility oracle for the
// min-cost-flow engine: a supply/demand network can ship everything only
// when the max flow between a super source and a super sink saturates it.
//
// The algorithms offered are:
//
//   - Edmonds–Karp: breadth-first search for fewest-arc augmenting paths.
//     Time O(V · E²), memory O(V + E).
//
//   - Dinic: level graph construction + blocking flow via DFS.
//     Time O(V² · E), O(E · √V) on unit-capacity networks; memory O(V + E).
//
// MaxShipment wires vertex supplies (attribute "supply" by default) to a
// synthetic super source and super sink and runs Dinic between them.
//
// # Graph Support
//
//	– Directed edges become one arc; undirected edges become two opposite
//	  arcs, each with the full capacity.
//	– Parallel edges contribute independent arcs.
//	– Self-loops are ignored.
//	– A missing or negative capacity attribute means unlimited.
//
// # API
//
//	type FlowOptions struct {
//	    Ctx                  context.Context // cancellation, checked per phase
//	    CapacityAttr         string          // default "capacity"
//	    SupplyAttr           string          // default "supply"
//	    LevelRebuildInterval int             // Dinic only: rebuild level graph every N pushes
//	    Logger               logr.Logger     // V(1): one summary per run
//	}
//
//	func Dinic(g *core.Graph, source, sink string, opts FlowOptions) (int64, error)
//	func EdmondsKarp(g *core.Graph, source, sink string, opts FlowOptions) (int64, error)
//	func MaxShipment(g *core.Graph, opts FlowOptions) (Shipment, error)
//
// # Errors
//
//	ErrSourceNotFound - the source vertex is missing.
//	ErrSinkNotFound   - the sink vertex is missing.
//	ErrSameEndpoints  - source and sink coincide.
//	ErrUnboundedFlow  - an uncapacitated path joins source and sink.
//	context.Canceled / context.DeadlineExceeded - opts.Ctx is done.
package flow
