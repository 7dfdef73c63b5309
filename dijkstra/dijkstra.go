package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvlath-simplex/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex of g
// and the edge-labelled predecessor tree.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. No passable edge may have a negative cost (ErrNegativeWeight).
//
// Undirected edges are traversable both ways; self-loops are ignored.
// Ties are broken by vertex ID so the tree is deterministic.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, ErrVertexNotFound
	}

	// 2) Pre-scan edges: resolve costs once, fail fast on negatives, build out-lists.
	out := make(map[string][]arcRef, g.VertexCount())
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		w, ok := cfg.Cost(e)
		if !ok {
			continue
		}
		if w < 0 {
			return nil, fmt.Errorf("%w: edge %s %s→%s weight=%d", ErrNegativeWeight, e.ID, e.From, e.To, w)
		}
		out[e.From] = append(out[e.From], arcRef{edge: e.ID, to: e.To, w: w})
		if !e.Directed {
			out[e.To] = append(out[e.To], arcRef{edge: e.ID, to: e.From, w: w})
		}
	}

	// 3) Run the lazy-decrease-key main loop.
	r := &runner{
		options: cfg,
		out:     out,
		res: &Result{
			Source:   cfg.Source,
			Dist:     make(map[string]int64),
			Prev:     make(map[string]string),
			PrevEdge: make(map[string]string),
		},
		visited: make(map[string]bool),
	}
	r.init(g.Vertices())
	r.process()

	return r.res, nil
}

// arcRef is one traversable direction of an edge.
type arcRef struct {
	edge string
	to   string
	w    int64
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	options Options
	out     map[string][]arcRef
	res     *Result
	visited map[string]bool
	pq      nodePQ
}

func (r *runner) init(vertices []string) {
	for _, v := range vertices {
		r.res.Dist[v] = Infinity
		r.res.Prev[v] = ""
		r.res.PrevEdge[v] = ""
	}
	r.res.Dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unvisited vertex and relaxes its arcs.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] || item.dist != r.res.Dist[item.id] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}

	// Anything beyond MaxDistance counts as unreached.
	for v, d := range r.res.Dist {
		if d != Infinity && d > r.options.MaxDistance {
			r.res.Dist[v] = Infinity
			r.res.Prev[v] = ""
			r.res.PrevEdge[v] = ""
		}
	}
}

// relax improves every neighbor reachable through an arc leaving u.
// Equal-distance candidates keep the first predecessor found.
func (r *runner) relax(u string) {
	du := r.res.Dist[u]
	for _, a := range r.out[u] {
		if r.visited[a.to] {
			continue
		}
		nd := du + a.w
		if nd >= r.res.Dist[a.to] {
			continue
		}
		r.res.Dist[a.to] = nd
		r.res.Prev[a.to] = u
		r.res.PrevEdge[a.to] = a.edge
		heap.Push(&r.pq, &nodeItem{id: a.to, dist: nd})
	}
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
