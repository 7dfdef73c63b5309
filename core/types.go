// Package core defines the central Graph, Vertex, and Edge types,
// and provides thread-safe primitives for building, querying, and observing graphs.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so graphs can be mutated across goroutines
// with minimal contention. Observers (see events.go) always run after the locks
// are released.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrEdgeExists          - explicit edge ID already in use.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEdgeExists indicates that an explicit edge ID is already taken.
	ErrEdgeExists = errors.New("core: edge ID already in use")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
//
// Attrs holds named attributes (supply, labels, ...). The map is owned by the
// graph: read it through Graph.Vertex copies, mutate it through SetVertexAttr.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Attrs stores named attribute values.
	Attrs map[string]interface{}
}

// Edge represents a connection between two vertices.
//
// Directed edges carry flow From→To only; undirected edges can be traversed
// both ways. Attrs holds named attributes such as cost and capacity.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Directed reports whether the edge is one-way.
	Directed bool

	// Attrs stores named attribute values.
	Attrs map[string]interface{}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for all new edges
// (true = directed, false = undirected).
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeDirected overrides the Graph's default directedness for this edge.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) { e.Directed = directed }
}

// WithEdgeID assigns an explicit identifier instead of the generated "eN" one.
func WithEdgeID(id string) EdgeOption {
	return func(e *Edge) { e.ID = id }
}

// WithEdgeAttr sets one attribute on the new edge.
func WithEdgeAttr(key string, value interface{}) EdgeOption {
	return func(e *Edge) { e.Attrs[key] = value }
}

// WithEdgeAttrs copies every entry of attrs onto the new edge.
func WithEdgeAttrs(attrs map[string]interface{}) EdgeOption {
	return func(e *Edge) {
		for k, v := range attrs {
			e.Attrs[k] = v
		}
	}
}

// Graph is the core in-memory graph data structure.
//
// muVert protects the vertex catalog; muEdgeAdj protects edges and adjacency.
// Lock order is always muVert -> muEdgeAdj. muSubs guards the observer table.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency
	muSubs    sync.Mutex   // guards subscribers

	// Configuration flags
	directed   bool // default directedness
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[vertexID][edgeID] = struct{}{} for every incident edge
	adjacency map[string]map[string]struct{}

	nextSubID   uint64
	subscribers map[uint64]func(Event)
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, with no loops and no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:    make(map[string]*Vertex),
		edges:       make(map[string]*Edge),
		adjacency:   make(map[string]map[string]struct{}),
		subscribers: make(map[uint64]func(Event)),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports the default directedness applied to new edges.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

func copyAttrs(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		dst[k] = v
	}

	return dst
}
