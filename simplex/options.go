package simplex

import (
	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvlath-simplex/core"
)

// Default attribute keys read from the graph.
const (
	DefaultSupplyAttr   = "supply"
	DefaultCapacityAttr = "capacity"
	DefaultCostAttr     = "cost"
)

// SupplyFunc decides the supply of a node from its ID and attributes.
type SupplyFunc func(nodeID string, attrs map[string]interface{}) int64

// WarmStartFunc proposes an initial spanning tree for g.
type WarmStartFunc func(g *core.Graph) (map[string]TreeLink, error)

// Options configures an Engine.
//
// SupplyAttr   – node attribute holding the supply (absent or non-numeric: 0).
// CapacityAttr – edge attribute holding the capacity (absent, negative or non-numeric: Unlimited).
// CostAttr     – edge attribute holding the cost (absent or non-numeric: DefaultCost).
// Supply       – overrides SupplyAttr when non-nil.
// WarmStart    – optional initial basis; a rejected tree falls back to the big-M cold start.
type Options struct {
	SupplyAttr   string
	CapacityAttr string
	CostAttr     string
	DefaultCost  int64
	Supply       SupplyFunc
	Pricing      Pricing
	WarmStart    WarmStartFunc
	Hooks        Hooks
	Logger       logr.Logger
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// DefaultOptions returns the attribute keys "supply", "capacity" and "cost",
// default cost 1 and most-negative pricing.
func DefaultOptions() Options {
	return Options{
		SupplyAttr:   DefaultSupplyAttr,
		CapacityAttr: DefaultCapacityAttr,
		CostAttr:     DefaultCostAttr,
		DefaultCost:  1,
		Pricing:      MostNegative,
		Logger:       logr.Discard(),
	}
}

// WithSupplyAttr sets the node attribute read as supply.
func WithSupplyAttr(key string) Option {
	return func(o *Options) { o.SupplyAttr = key }
}

// WithCapacityAttr sets the edge attribute read as capacity. An empty key
// makes every arc uncapacitated.
func WithCapacityAttr(key string) Option {
	return func(o *Options) { o.CapacityAttr = key }
}

// WithCostAttr sets the edge attribute read as cost.
func WithCostAttr(key string) Option {
	return func(o *Options) { o.CostAttr = key }
}

// WithDefaultCost sets the cost of edges without a numeric cost attribute.
func WithDefaultCost(c int64) Option {
	return func(o *Options) { o.DefaultCost = c }
}

// WithSupplyFunc replaces attribute lookup for supplies.
func WithSupplyFunc(fn SupplyFunc) Option {
	return func(o *Options) { o.Supply = fn }
}

// WithPricing selects the entering-arc strategy.
func WithPricing(p Pricing) Option {
	return func(o *Options) { o.Pricing = p }
}

// WithWarmStart installs an initial-basis provider used by Init.
func WithWarmStart(fn WarmStartFunc) Option {
	return func(o *Options) { o.WarmStart = fn }
}

// WithHooks installs engine callbacks.
func WithHooks(h Hooks) Option {
	return func(o *Options) { o.Hooks = h }
}

// WithLogger sets the logger. V(1) logs compute summaries, V(2) mutations,
// V(3) individual pivots.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func (o *Options) supplyOf(id string, attrs map[string]interface{}) int64 {
	if o.Supply != nil {
		return o.Supply(id, attrs)
	}
	s, _ := core.Int64Attr(attrs, o.SupplyAttr)
	return s
}

func (o *Options) costOf(attrs map[string]interface{}) int64 {
	if c, ok := core.Int64Attr(attrs, o.CostAttr); ok {
		return c
	}
	return o.DefaultCost
}

func (o *Options) capacityOf(attrs map[string]interface{}) int64 {
	return normCapacity(core.Int64Attr(attrs, o.CapacityAttr))
}

func normCapacity(c int64, ok bool) int64 {
	if !ok || c < 0 {
		return Unlimited
	}
	return c
}
