package flow

import (
	"github.com/katalvlaran/lvlath-simplex/core"
)

// EdmondsKarp computes the maximum flow from source→sink
// using the Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// Inputs, capacities and errors are the same as for Dinic.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(g *core.Graph, source, sink string, opts FlowOptions) (int64, error) {
	opts.normalize()
	if err := validateEndpoints(g, source, sink); err != nil {
		return 0, err
	}

	n := buildNetwork(g, opts, 0)
	total, err := n.edmondsKarp(opts, n.index[source], n.index[sink])
	if err != nil {
		return total, err
	}
	if total >= inf {
		return 0, ErrUnboundedFlow
	}
	opts.Logger.V(1).Info("max flow", "algorithm", "edmonds-karp", "source", source, "sink", sink, "value", total)

	return total, nil
}

func (n *network) edmondsKarp(opts FlowOptions, s, t int) (int64, error) {
	// parent[v] = arc that reached v in the current BFS
	parent := make([]int, n.size())
	var total int64
	for {
		if err := opts.Ctx.Err(); err != nil {
			return total, err
		}

		// 1) BFS for the fewest-arc augmenting path
		for i := range parent {
			parent[i] = -1
		}
		queue := []int{s}
		found := false
		for i := 0; i < len(queue) && !found; i++ {
			u := queue[i]
			for a := n.head[u]; a >= 0; a = n.next[a] {
				v := n.to[a]
				if n.cap[a] <= 0 || v == s || parent[v] >= 0 {
					continue
				}
				parent[v] = a
				if v == t {
					found = true
					break
				}
				queue = append(queue, v)
			}
		}
		if !found {
			return total, nil
		}

		// 2) Bottleneck, then augment; n.to[a^1] is the tail of arc a
		bottle := inf
		for v := t; v != s; v = n.to[parent[v]^1] {
			bottle = minInt64(bottle, n.cap[parent[v]])
		}
		for v := t; v != s; v = n.to[parent[v]^1] {
			a := parent[v]
			n.cap[a] -= bottle
			n.cap[a^1] += bottle
		}
		total += bottle
		if total >= inf {
			return inf, nil
		}
	}
}
