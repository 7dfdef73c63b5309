package flow

import (
	"github.com/katalvlaran/lvlath-simplex/core"
)

// Dinic computes the maximum flow from `source` to `sink` in `g` using
// Dinic's algorithm (level graph + blocking flows).
//
// Capacities come from opts.CapacityAttr; an edge without one is unlimited.
// Undirected edges contribute two independent opposite arcs, and self-loops
// are ignored.
//
// It returns ErrSourceNotFound, ErrSinkNotFound, ErrSameEndpoints,
// ErrUnboundedFlow when an uncapacitated path joins the endpoints, or the
// context error on cancellation.
//
// Steps:
//  1. Normalize options and validate endpoints (O(1)).
//  2. Build the residual network via buildNetwork (O(V log V + E)).
//  3. Repeat until the sink is unreachable:
//     a. Check for cancellation (O(1)).
//     b. BFS to build the level graph (O(V + E)).
//     c. DFS-based blocking flow with a current-arc pointer per vertex,
//     optionally rebuilding the level graph every LevelRebuildInterval augmentations.
//
// Complexity:
//
//	Time:   O(V² · E) in general; O(E · √V) on unit-capacity networks.
//	Memory: O(V + E).
func Dinic(g *core.Graph, source, sink string, opts FlowOptions) (int64, error) {
	// 1) Normalize options and validate endpoints
	opts.normalize()
	if err := validateEndpoints(g, source, sink); err != nil {
		return 0, err
	}

	// 2) Residual network
	n := buildNetwork(g, opts, 0)

	// 3) Level graphs + blocking flows
	total, err := n.dinic(opts, n.index[source], n.index[sink])
	if err != nil {
		return total, err
	}
	if total >= inf {
		return 0, ErrUnboundedFlow
	}
	opts.Logger.V(1).Info("max flow", "algorithm", "dinic", "source", source, "sink", sink, "value", total)

	return total, nil
}

func validateEndpoints(g *core.Graph, source, sink string) error {
	if !g.HasVertex(source) {
		return ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return ErrSinkNotFound
	}
	if source == sink {
		return ErrSameEndpoints
	}
	return nil
}

// dinic runs the phases on the residual network, mutating capacities.
// A result of inf or more means unbounded.
func (n *network) dinic(opts FlowOptions, s, t int) (int64, error) {
	level := make([]int, n.size())
	iter := make([]int, n.size())
	var total int64
	augments := 0
	for {
		// 3a) Cancellation check before BFS
		if err := opts.Ctx.Err(); err != nil {
			return total, err
		}
		// 3b) Level graph; done once the sink drops out of it
		if !n.levels(level, s, t) {
			return total, nil
		}
		// 3c) Blocking flow
		copy(iter, n.head)
		for {
			pushed := n.push(level, iter, s, t, inf)
			if pushed == 0 {
				break
			}
			total += pushed
			if total >= inf {
				return inf, nil
			}
			augments++
			if opts.LevelRebuildInterval > 0 && augments%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}
}

// levels fills level with BFS distances from s over arcs with residual
// capacity and reports whether t was reached.
func (n *network) levels(level []int, s, t int) bool {
	for i := range level {
		level[i] = -1
	}
	level[s] = 0
	queue := []int{s}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for a := n.head[u]; a >= 0; a = n.next[a] {
			if v := n.to[a]; n.cap[a] > 0 && level[v] < 0 {
				level[v] = level[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return level[t] >= 0
}

// push sends up to available units from u to t along the level graph and
// returns the amount actually sent. iter[u] skips arcs already known dead.
func (n *network) push(level, iter []int, u, t int, available int64) int64 {
	if u == t {
		return available
	}
	for ; iter[u] >= 0; iter[u] = n.next[iter[u]] {
		a := iter[u]
		v := n.to[a]
		if n.cap[a] <= 0 || level[v] != level[u]+1 {
			continue
		}
		if pushed := n.push(level, iter, v, t, minInt64(available, n.cap[a])); pushed > 0 {
			n.cap[a] -= pushed
			n.cap[a^1] += pushed
			return pushed
		}
	}
	return 0
}
