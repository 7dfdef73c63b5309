// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (to keep adjacency invariants consistent).
package core

import (
	"sort"
)

// AddVertex inserts a vertex if missing (idempotent) and emits NodeAdded for a
// new vertex.
//
// Steps:
//  1. Validate non-empty ID (ErrEmptyVertexID).
//  2. Under muVert, check presence; if missing, allocate Vertex with attrs copy.
//  3. Under muEdgeAdj, bootstrap the adjacency bucket.
//  4. Emit NodeAdded outside the locks.
//
// Complexity: O(len(attrs)).
func (g *Graph) AddVertex(id string, attrs ...map[string]interface{}) error {
	ev, added, err := g.addVertex(id, attrs...)
	if err != nil {
		return err
	}
	if added {
		g.emit(ev)
	}

	return nil
}

// addVertex performs the insertion without emitting, returning the event to emit.
func (g *Graph) addVertex(id string, attrs ...map[string]interface{}) (Event, bool, error) {
	if id == "" {
		return Event{}, false, ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return Event{}, false, nil
	}
	v := &Vertex{ID: id, Attrs: make(map[string]interface{})}
	for _, a := range attrs {
		for k, val := range a {
			v.Attrs[k] = val
		}
	}
	g.vertices[id] = v

	g.muEdgeAdj.Lock()
	if g.adjacency[id] == nil {
		g.adjacency[id] = make(map[string]struct{})
	}
	g.muEdgeAdj.Unlock()

	return Event{Kind: NodeAdded, Vertex: id, Attrs: copyAttrs(v.Attrs)}, true, nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a detached copy of the vertex (attributes included).
func (g *Graph) Vertex(id string) (Vertex, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, ErrVertexNotFound
	}

	return Vertex{ID: v.ID, Attrs: copyAttrs(v.Attrs)}, nil
}

// RemoveVertex deletes a vertex and every incident edge.
//
// Steps:
//  1. Under both locks, collect incident edges sorted by ID, unlink and delete them.
//  2. Delete the vertex record and its adjacency bucket.
//  3. Emit EdgeRemoved per incident edge, then NodeRemoved.
//
// Complexity: O(deg(v)·log deg(v)).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	g.muEdgeAdj.Lock()

	if _, exists := g.vertices[id]; !exists {
		g.muEdgeAdj.Unlock()
		g.muVert.Unlock()
		return ErrVertexNotFound
	}

	incident := make([]string, 0, len(g.adjacency[id]))
	for eid := range g.adjacency[id] {
		incident = append(incident, eid)
	}
	sort.Strings(incident)

	events := make([]Event, 0, len(incident)+1)
	for _, eid := range incident {
		e := g.edges[eid]
		unlinkEdge(g, e)
		delete(g.edges, eid)
		events = append(events, Event{Kind: EdgeRemoved, Edge: eid, From: e.From, To: e.To, Directed: e.Directed})
	}
	delete(g.adjacency, id)
	delete(g.vertices, id)

	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()

	events = append(events, Event{Kind: NodeRemoved, Vertex: id})
	g.emit(events...)

	return nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}
