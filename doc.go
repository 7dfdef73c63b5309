// Package lvlath is the root of lvlath-simplex: a dynamic minimum-cost-flow
// engine for in-memory graphs that keeps its optimal solution up to date
// while the graph changes underneath it.
//
// 🚀 What is inside?
//
//	• core/      – thread-safe Graph with mixed directed/undirected edges,
//	               numeric attributes and a synchronous mutation-event stream
//	• bigm/      – exact "k·M + c" arithmetic for the big-M method
//	• simplex/   – network simplex on a parent/thread/depth spanning tree,
//	               patched in place on every graph event
//	• shortest/  – one-to-all shortest paths as a flow problem on top of simplex
//	• dijkstra/  – classic Dijkstra, used to warm-start shortest/
//	• builder/   – deterministic network fixtures with costs, capacities, supplies
//	• flow/      – Dinic and Edmonds–Karp max flow; MaxShipment checks how
//	               much supply can reach demand at all
//	• netfile/   – DIMACS and HCL problem files, mutation scripts
//	• cmd/lvsimplex – solve a file, replay a script, print flows or paths
//
// ✨ How it fits together
//
//	g := core.NewGraph(core.WithDirected(true))
//	... add vertices with "supply", edges with "cost" and "capacity" ...
//	eng := simplex.New()
//	_ = eng.Init(g)
//	cancel := g.Subscribe(func(ev core.Event) { _ = eng.Apply(ev) })
//	status, _ := eng.Compute()   // OPTIMAL, INFEASIBLE or UNBOUNDED
//	_ = g.SetEdgeAttr("e7", "cost", 12)
//	status, _ = eng.Compute()    // resumes from the previous tree
//
// Quick ASCII example:
//
//	 (+2) A ──1──▶ B ──1──▶ C (−2)
//	      └─────────3───────▶
//
//	ships two units A→B→C for a cost of 4; raising B→C to 5 moves them onto
//	the direct edge for a cost of 6.
//
//	go get github.com/katalvlaran/lvlath-simplex
package lvlath
