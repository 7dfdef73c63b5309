package shortest

import (
	"errors"
	"math"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvlath-simplex/simplex"
)

// Sentinel errors returned by the shortest-path engine.
var (
	// ErrNoSource indicates a path query while no source is set.
	ErrNoSource = errors.New("shortest: no source set")

	// ErrUnreachable indicates a path query for a node the source cannot reach.
	ErrUnreachable = errors.New("shortest: node unreachable from source")

	// ErrNegativeCycle indicates a cycle of negative length anywhere in the
	// graph. An undirected edge with negative length is such a cycle.
	ErrNegativeCycle = errors.New("shortest: negative cycle")
)

// Infinity is the length reported for unreachable nodes.
const Infinity int64 = math.MaxInt64

// DefaultLengthAttr is the edge attribute read as length.
const DefaultLengthAttr = "length"

// Path is a materialized shortest path ordered from source to target.
// Edges[i] joins Nodes[i] and Nodes[i+1].
type Path struct {
	Nodes  []string
	Edges  []string
	Length int64
}

// Options configures an Engine.
//
// LengthAttr    – edge attribute holding the length (absent or non-numeric: DefaultLength).
// DefaultLength – length of edges without a usable attribute.
// WarmStart     – bootstrap from Dijkstra when the source is set before Init.
type Options struct {
	LengthAttr    string
	DefaultLength int64
	WarmStart     bool
	Pricing       simplex.Pricing
	Logger        logr.Logger
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// DefaultOptions returns length attribute "length", default length 1, warm
// start on and first-negative pricing.
func DefaultOptions() Options {
	return Options{
		LengthAttr:    DefaultLengthAttr,
		DefaultLength: 1,
		WarmStart:     true,
		Pricing:       simplex.FirstNegative,
		Logger:        logr.Discard(),
	}
}

// WithLengthAttr sets the edge attribute read as length.
func WithLengthAttr(key string) Option {
	return func(o *Options) { o.LengthAttr = key }
}

// WithDefaultLength sets the length of edges without a numeric attribute.
func WithDefaultLength(l int64) Option {
	return func(o *Options) { o.DefaultLength = l }
}

// WithWarmStart enables or disables the Dijkstra bootstrap.
func WithWarmStart(on bool) Option {
	return func(o *Options) { o.WarmStart = on }
}

// WithPricing selects the pricing rule of the underlying simplex engine.
func WithPricing(p simplex.Pricing) Option {
	return func(o *Options) { o.Pricing = p }
}

// WithLogger sets the logger; the engine logs under the name "shortest".
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
