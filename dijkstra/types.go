package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvlath-simplex/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge cost was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Infinity is the distance reported for unreachable vertices.
const Infinity int64 = math.MaxInt64

// DefaultCostAttr is the edge attribute read when no cost option is given.
const DefaultCostAttr = "cost"

// CostFunc returns the traversal cost of an edge. Returning false marks the
// edge impassable.
type CostFunc func(e core.Edge) (cost int64, ok bool)

// AttrCost reads cost from attribute key, falling back to def when the
// attribute is absent or non-numeric.
func AttrCost(key string, def int64) CostFunc {
	return func(e core.Edge) (int64, bool) {
		if c, ok := core.Int64Attr(e.Attrs, key); ok {
			return c, true
		}
		return def, true
	}
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting vertex ID (must be non-empty and present in the graph).
// Cost        – edge cost function; default AttrCost(DefaultCostAttr, 1).
// MaxDistance – vertices farther than this are left unreached. Default Infinity.
type Options struct {
	Source      string
	Cost        CostFunc
	MaxDistance int64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithCost installs a custom edge cost function.
func WithCost(fn CostFunc) Option {
	return func(o *Options) { o.Cost = fn }
}

// WithCostAttr reads costs from attribute key with default def.
func WithCostAttr(key string, def int64) Option {
	return func(o *Options) { o.Cost = AttrCost(key, def) }
}

// WithMaxDistance sets a maximum distance threshold.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options initialized with defaults for the given source.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		Cost:        AttrCost(DefaultCostAttr, 1),
		MaxDistance: Infinity,
	}
}

// Result holds the shortest-path tree rooted at the source.
//
// Dist[v]     – distance from the source, Infinity when unreachable.
// Prev[v]     – predecessor vertex on a shortest path ("" for source/unreachable).
// PrevEdge[v] – ID of the edge Prev[v]→v used by that path ("" likewise).
type Result struct {
	Source   string
	Dist     map[string]int64
	Prev     map[string]string
	PrevEdge map[string]string
}

// Reachable reports whether v has a finite distance.
func (r *Result) Reachable(v string) bool {
	d, ok := r.Dist[v]
	return ok && d != Infinity
}

// PathTo rebuilds the vertex sequence source→v, or nil when v is unreachable.
func (r *Result) PathTo(v string) []string {
	if !r.Reachable(v) {
		return nil
	}
	var rev []string
	for cur := v; cur != ""; cur = r.Prev[cur] {
		rev = append(rev, cur)
		if cur == r.Source {
			break
		}
	}
	out := make([]string, len(rev))
	for i := range rev {
		out[i] = rev[len(rev)-1-i]
	}

	return out
}
