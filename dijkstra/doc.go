// Package dijkstra implements Dijkstra's shortest-path algorithm on *core.Graph
// with non-negative edge costs.
//
// Beyond distances, Dijkstra returns the shortest-path tree labelled by edge
// IDs (Result.PrevEdge). The network simplex shortest-path specialization uses
// that tree as an already-optimal starting basis, which is why parallel edges
// and undirected edges are reported precisely rather than collapsed into
// vertex pairs.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Options:
//
//   - Source(id)               starting vertex (required).
//   - WithCostAttr(key, def)   read costs from an edge attribute with a default.
//   - WithCost(fn)             arbitrary cost function; false marks an edge impassable.
//   - WithMaxDistance(d)       vertices farther than d are reported unreachable.
//
// Errors:
//
//   - ErrEmptySource, ErrNilGraph, ErrVertexNotFound, ErrNegativeWeight.
//
// Example:
//
//	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithCostAttr("length", 1))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Dist["C"], res.PathTo("C"))
package dijkstra
