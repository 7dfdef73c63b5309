package flow

import (
	"math"

	"github.com/katalvlaran/lvlath-simplex/core"
)

// inf stands for an unlimited capacity. It is far below MaxInt64 so that
// sums of a few unlimited arcs cannot overflow.
const inf int64 = math.MaxInt64 / 4

// network is a residual network over dense vertex indices. Arcs come in
// pairs: arc i and arc i^1 are each other's reverse.
type network struct {
	ids   []string
	index map[string]int
	head  []int   // first arc leaving each vertex, -1 if none
	next  []int   // next arc leaving the same vertex
	to    []int   // arc target
	cap   []int64 // residual capacity
}

func newNetwork(ids []string, extra int) *network {
	n := &network{
		ids:   ids,
		index: make(map[string]int, len(ids)),
		head:  make([]int, len(ids)+extra),
	}
	for i, id := range ids {
		n.index[id] = i
	}
	for i := range n.head {
		n.head[i] = -1
	}
	return n
}

func (n *network) size() int { return len(n.head) }

// addArc adds u→v with capacity c and its zero-capacity reverse.
func (n *network) addArc(u, v int, c int64) {
	n.to = append(n.to, v, u)
	n.cap = append(n.cap, c, 0)
	n.next = append(n.next, n.head[u], n.head[v])
	n.head[u] = len(n.to) - 2
	n.head[v] = len(n.to) - 1
}

// buildNetwork constructs the residual network of g, reserving extra
// vertex slots after the graph's vertices.
//
// Steps:
//  1. Index vertices in sorted ID order (O(V log V)).
//  2. For each edge (O(E)):
//     a. Skip self-loops; they never carry flow between distinct vertices.
//     b. Read the capacity; absent or negative means inf.
//     c. Directed: one arc. Undirected: two independent opposite arcs,
//     each with the full capacity.
//
// Complexity:
//
//	Time:   O(V log V + E).
//	Memory: O(V + E).
func buildNetwork(g *core.Graph, opts FlowOptions, extra int) *network {
	n := newNetwork(g.Vertices(), extra)
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		c, ok := core.Int64Attr(e.Attrs, opts.CapacityAttr)
		if !ok || c < 0 || c > inf {
			c = inf
		}
		u, v := n.index[e.From], n.index[e.To]
		n.addArc(u, v, c)
		if !e.Directed {
			n.addArc(v, u, c)
		}
	}
	return n
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
