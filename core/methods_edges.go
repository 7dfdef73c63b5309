// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edge/Edges/EdgeCount,
//       incidence queries. Also: nextEdgeID().
// Determinism:
//   - Edges() and IncidentEdges() return edges sorted by Edge.ID asc.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix of generated edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new edge and returns its ID.
//
// Steps:
//  1. Validate endpoint IDs and the loop policy.
//  2. Ensure endpoints exist (implicitly created vertices emit NodeAdded).
//  3. Build the Edge with the graph's default direction, apply opts.
//  4. Under muEdgeAdj: reject taken IDs and forbidden parallel edges,
//     generate an ID if none was given, store and link adjacency.
//  5. Emit EdgeAdded.
//
// Complexity: O(deg(from)) when multi-edges are disabled, O(1) otherwise.
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.Looped() {
		return "", ErrLoopNotAllowed
	}

	var events []Event
	for _, id := range []string{from, to} {
		ev, added, err := g.addVertex(id)
		if err != nil {
			return "", err
		}
		if added {
			events = append(events, ev)
		}
	}

	e := &Edge{From: from, To: to, Directed: g.Directed(), Attrs: make(map[string]interface{})}
	for _, opt := range opts {
		opt(e)
	}

	g.muEdgeAdj.Lock()
	if e.ID != "" {
		if _, taken := g.edges[e.ID]; taken {
			g.muEdgeAdj.Unlock()
			g.emit(events...)
			return "", ErrEdgeExists
		}
	}
	if !g.allowMulti && hasParallel(g, e) {
		g.muEdgeAdj.Unlock()
		g.emit(events...)
		return "", ErrMultiEdgeNotAllowed
	}
	if e.ID == "" {
		e.ID = nextEdgeID(g)
	}
	g.edges[e.ID] = e
	g.adjacency[from][e.ID] = struct{}{}
	g.adjacency[to][e.ID] = struct{}{}
	g.muEdgeAdj.Unlock()

	events = append(events, Event{
		Kind: EdgeAdded, Edge: e.ID, From: from, To: to,
		Directed: e.Directed, Attrs: copyAttrs(e.Attrs),
	})
	g.emit(events...)

	return e.ID, nil
}

// hasParallel reports whether an edge joining the same endpoints already exists.
// Undirected edges match in both orientations. Caller holds muEdgeAdj.
func hasParallel(g *Graph, e *Edge) bool {
	for eid := range g.adjacency[e.From] {
		o := g.edges[eid]
		if o.From == e.From && o.To == e.To {
			return true
		}
		if (!o.Directed || !e.Directed) && o.From == e.To && o.To == e.From {
			return true
		}
	}

	return false
}

// RemoveEdge deletes one edge and emits EdgeRemoved.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	e, ok := g.edges[eid]
	if !ok {
		g.muEdgeAdj.Unlock()
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	unlinkEdge(g, e)
	g.muEdgeAdj.Unlock()

	g.emit(Event{Kind: EdgeRemoved, Edge: eid, From: e.From, To: e.To, Directed: e.Directed})

	return nil
}

// unlinkEdge removes e from both endpoint buckets. Caller holds muEdgeAdj.
func unlinkEdge(g *Graph, e *Edge) {
	delete(g.adjacency[e.From], e.ID)
	delete(g.adjacency[e.To], e.ID)
}

// HasEdge reports whether at least one edge can be traversed from→to.
// Undirected edges answer for both orientations.
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for eid := range g.adjacency[from] {
		e := g.edges[eid]
		if e.From == from && e.To == to {
			return true
		}
		if !e.Directed && e.From == to && e.To == from {
			return true
		}
	}

	return false
}

// Edge returns a detached copy of the edge with the given ID.
func (g *Graph) Edge(eid string) (Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return detach(e), nil
}

// Edges returns detached copies of all edges sorted by Edge.ID asc.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, detach(e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// IncidentEdges returns detached copies of every edge touching id, sorted by ID.
// Complexity: O(deg log deg).
func (g *Graph) IncidentEdges(id string) ([]Edge, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]Edge, 0, len(g.adjacency[id]))
	for eid := range g.adjacency[id] {
		out = append(out, detach(g.edges[eid]))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// EdgeCount returns the total number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

func detach(e *Edge) Edge {
	return Edge{ID: e.ID, From: e.From, To: e.To, Directed: e.Directed, Attrs: copyAttrs(e.Attrs)}
}

// nextEdgeID returns the next free "eN" identifier. Caller holds muEdgeAdj,
// which also makes skipping explicitly taken IDs race-free.
func nextEdgeID(g *Graph) string {
	for {
		n := atomic.AddUint64(&g.nextEdgeID, 1)
		var buf [1 + 20]byte
		b := append(buf[:0], edgeIDPrefix)
		b = strconv.AppendUint(b, n, 10)
		id := string(b)
		if _, taken := g.edges[id]; !taken {
			return id
		}
	}
}
