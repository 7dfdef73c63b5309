// Package core provides the thread-safe in-memory Graph that feeds the network
// simplex engine: vertices and edges identified by strings, named attributes
// on both, and a synchronous mutation stream.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected default, WithEdgeDirected per edge)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Named attributes on vertices and edges (supply, capacity, cost, ...)
//   - Collision-free edge IDs ("e1", "e2", …) or caller-chosen ones (WithEdgeID)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Mutation stream:
//
//	cancel := g.Subscribe(func(ev core.Event) { engine.Apply(ev) })
//	defer cancel()
//
// Every committed mutation is described by one self-contained Event (attribute
// snapshots are copied into it), so consumers never need a live reference into
// graph internals. See events.go for ordering guarantees.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string, attrs ...map[string]interface{}) error // O(1)
//	RemoveVertex(id string) error                               // O(deg log deg)
//	HasVertex(id string) bool                                   // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, opts ...EdgeOption) (edgeID string, err error)
//	RemoveEdge(edgeID string) error
//	HasEdge(from, to string) bool
//
//	// Attributes
//	SetVertexAttr / RemoveVertexAttr / SetEdgeAttr / RemoveEdgeAttr
//	Int64Attr(attrs, key) (int64, bool) // numeric decoding with "absent/non-numeric" flag
//
//	// Query
//	Vertex(id) / Edge(id)   // detached copies
//	Vertices() []string     // sorted
//	Edges() []Edge          // sorted by ID
//	IncidentEdges(id)       // sorted by ID
//
// Errors:
//
//	ErrEmptyVertexID, ErrVertexNotFound, ErrEdgeNotFound, ErrEdgeExists,
//	ErrLoopNotAllowed, ErrMultiEdgeNotAllowed
package core
