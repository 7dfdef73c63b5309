package shortest

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvlath-simplex/core"
	"github.com/katalvlaran/lvlath-simplex/dijkstra"
	"github.com/katalvlaran/lvlath-simplex/simplex"
)

// Engine solves one-to-all shortest paths as a min-cost flow: the source
// supplies n-1 units, every other node demands one, capacities are
// unlimited and lengths are costs.
//
// Like simplex.Engine it has no internal locking.
type Engine struct {
	opts   Options
	log    logr.Logger
	flow   *simplex.Engine
	source string
	n      int
}

// New creates an uninitialized Engine.
func New(opts ...Option) *Engine {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	e := &Engine{opts: cfg, log: cfg.Logger.WithName("shortest")}

	sopts := []simplex.Option{
		simplex.WithCostAttr(cfg.LengthAttr),
		simplex.WithDefaultCost(cfg.DefaultLength),
		simplex.WithCapacityAttr(""),
		simplex.WithSupplyFunc(func(id string, _ map[string]interface{}) int64 { return e.supplyOf(id) }),
		simplex.WithPricing(cfg.Pricing),
		simplex.WithLogger(cfg.Logger),
		simplex.WithHooks(simplex.Hooks{
			OnArtificialEnter: func(id string) {
				e.log.V(2).Info("node cut off from the source tree", "node", id)
			},
		}),
	}
	if cfg.WarmStart {
		sopts = append(sopts, simplex.WithWarmStart(e.warmStart))
	}
	e.flow = simplex.New(sopts...)
	return e
}

// Init snapshots g. A source set beforehand must exist in g.
func (e *Engine) Init(g *core.Graph) error {
	if e.source != "" && !g.HasVertex(e.source) {
		return fmt.Errorf("%w: source %q", simplex.ErrNodeNotFound, e.source)
	}
	e.n = g.VertexCount()
	return e.flow.Init(g)
}

// Terminate drops all solver state; the source is kept.
func (e *Engine) Terminate() {
	e.flow.Terminate()
	e.n = 0
}

// Simplex exposes the underlying flow engine for introspection.
func (e *Engine) Simplex() *simplex.Engine { return e.flow }

// Source returns the current source, "" when none is set.
func (e *Engine) Source() string { return e.source }

// SetSource moves the source to id; "" clears it. Before Init the choice is
// only recorded. Afterwards supplies are patched in place and the next
// Compute resumes from the current tree.
func (e *Engine) SetSource(id string) error {
	if !e.flow.Initialized() {
		e.source = id
		return nil
	}
	if id == e.source {
		return nil
	}
	if id != "" && !e.flow.HasNode(id) {
		return fmt.Errorf("%w: source %q", simplex.ErrNodeNotFound, id)
	}

	old := e.source
	e.source = id
	switch {
	case old == "":
		// Every node turns from neutral into a sink.
		for _, v := range e.flow.NodeIDs() {
			if err := e.flow.SetSupply(v, e.supplyOf(v)); err != nil {
				return err
			}
		}
	case id == "":
		for _, v := range e.flow.NodeIDs() {
			if err := e.flow.SetSupply(v, 0); err != nil {
				return err
			}
		}
	default:
		if err := e.flow.SetSupply(old, -1); err != nil {
			return err
		}
		if err := e.flow.SetSupply(id, e.supplyOf(id)); err != nil {
			return err
		}
	}
	e.log.V(1).Info("source changed", "from", old, "to", id)
	return nil
}

// Compute runs the simplex engine to a terminal status.
func (e *Engine) Compute() (simplex.SolutionStatus, error) {
	return e.flow.Compute()
}

// Apply processes one graph mutation, keeping the source's supply equal to
// the number of other nodes. Removing the source clears it.
func (e *Engine) Apply(ev core.Event) error {
	switch ev.Kind {
	case core.NodeAdded:
		if err := e.flow.Apply(ev); err != nil {
			return err
		}
		e.n++
		return e.resupplySource()

	case core.NodeRemoved:
		if err := e.flow.Apply(ev); err != nil {
			return err
		}
		e.n--
		if ev.Vertex == e.source {
			e.log.V(1).Info("source removed", "node", ev.Vertex)
			return e.SetSource("")
		}
		return e.resupplySource()
	}
	return e.flow.Apply(ev)
}

func (e *Engine) resupplySource() error {
	if e.source == "" {
		return nil
	}
	return e.flow.SetSupply(e.source, e.supplyOf(e.source))
}

// supplyOf is n-1 at the source, -1 elsewhere, 0 everywhere without a source.
func (e *Engine) supplyOf(id string) int64 {
	switch {
	case e.source == "":
		return 0
	case id == e.source:
		return int64(e.n - 1)
	}
	return -1
}

// warmStart turns a Dijkstra tree into an initial basis. Dijkstra rejects
// negative lengths, in which case the simplex engine falls back to its cold
// start.
func (e *Engine) warmStart(g *core.Graph) (map[string]simplex.TreeLink, error) {
	if e.source == "" {
		return nil, ErrNoSource
	}
	res, err := dijkstra.Dijkstra(g,
		dijkstra.Source(e.source),
		dijkstra.WithCostAttr(e.opts.LengthAttr, e.opts.DefaultLength))
	if err != nil {
		return nil, err
	}

	links := make(map[string]simplex.TreeLink, len(res.PrevEdge))
	for v, eid := range res.PrevEdge {
		if eid == "" {
			continue
		}
		ed, err := g.Edge(eid)
		if err != nil {
			return nil, err
		}
		parent := res.Prev[v]
		links[v] = simplex.TreeLink{
			Parent:  parent,
			EdgeID:  eid,
			Reverse: !ed.Directed && ed.From != parent,
		}
	}
	return links, nil
}
