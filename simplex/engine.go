package simplex

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/lvlath-simplex/bigm"
	"github.com/katalvlaran/lvlath-simplex/core"
)

// Engine is a dynamic network simplex solver.
//
// An Engine is not safe for concurrent use: callers serialize Apply, Compute
// and queries on one instance.
type Engine struct {
	opts Options
	log  logr.Logger

	initialized bool
	status      SolutionStatus

	root  *node
	nodes map[string]*node
	edges map[string]*edgeArcs

	nonbasic arcSet // real arcs at a bound
	parked   arcSet // artificial arcs outside the basis

	objective bigm.Value
	stats     Stats

	stallAfter int // overrides stallLimit when positive
}

// New creates an uninitialized Engine.
func New(opts ...Option) *Engine {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Engine{opts: cfg, log: cfg.Logger.WithName("simplex")}
}

// Init snapshots g and builds the initial basis.
//
// Steps:
//  1. Reject edge IDs using ReservedPrefix (ErrReservedID).
//  2. Create nodes (sorted by ID) and arcs (sorted by edge ID); undirected
//     edges yield a forward and a reverse arc.
//  3. Build the basis from Options.WarmStart when set and accepted,
//     otherwise from artificial arcs (big-M cold start).
//
// The status after Init is Undefined.
func (e *Engine) Init(g *core.Graph) error {
	if e.initialized {
		return ErrAlreadyInitialized
	}
	edges := g.Edges()
	for _, ed := range edges {
		if strings.HasPrefix(ed.ID, ReservedPrefix) {
			return fmt.Errorf("%w: %q", ErrReservedID, ed.ID)
		}
	}

	e.reset()
	for _, id := range g.Vertices() {
		v, err := g.Vertex(id)
		if err != nil {
			return err
		}
		e.newNode(id, e.opts.supplyOf(id, v.Attrs))
	}
	for _, ed := range edges {
		e.newEdge(ed.ID, ed.From, ed.To, ed.Directed, e.opts.costOf(ed.Attrs), e.opts.capacityOf(ed.Attrs))
	}

	warm := false
	if e.opts.WarmStart != nil {
		links, err := e.opts.WarmStart(g)
		if err == nil {
			err = e.warmStart(links)
		}
		if err != nil {
			e.log.V(1).Info("warm start rejected, using cold start", "reason", err.Error())
		} else {
			warm = true
		}
	}
	if !warm {
		e.coldStart()
	}

	e.initialized = true
	e.log.V(1).Info("initialized", "nodes", len(e.nodes), "edges", len(e.edges),
		"warm", warm, "objective", e.objective.String())
	return nil
}

// Terminate drops all solver state. The Engine can be initialized again.
func (e *Engine) Terminate() {
	e.reset()
	e.initialized = false
	e.status = Undefined
	e.log.V(1).Info("terminated")
}

func (e *Engine) reset() {
	e.root = &node{}
	e.root.parent = e.root
	e.root.thread = e.root
	e.nodes = make(map[string]*node)
	e.edges = make(map[string]*edgeArcs)
	e.nonbasic = arcSet{}
	e.parked = arcSet{}
	e.objective = bigm.Zero
	e.stats = Stats{}
	e.status = Undefined
}

// newNode registers a node with a parked artificial arc, outside the tree.
func (e *Engine) newNode(id string, supply int64) *node {
	v := &node{id: id, supply: supply}
	v.artificial = &arc{
		key:        artificialPrefix + id,
		src:        v,
		tgt:        e.root,
		capacity:   Unlimited,
		cost:       bigm.M,
		status:     NonbasicLower,
		artificial: true,
		pos:        -1,
	}
	e.nodes[id] = v
	e.root.supply -= supply
	return v
}

// newEdge registers the arcs of an edge at their lower bound.
func (e *Engine) newEdge(id, from, to string, directed bool, cost, capacity int64) *edgeArcs {
	u, v := e.nodes[from], e.nodes[to]
	ea := &edgeArcs{id: id, directed: directed}
	ea.fwd = e.newArc(id, id, false, u, v, cost, capacity)
	if !directed {
		ea.rev = e.newArc(reversePrefix+id, id, true, v, u, cost, capacity)
	}
	e.edges[id] = ea
	return ea
}

func (e *Engine) newArc(key, edge string, reverse bool, src, tgt *node, cost, capacity int64) *arc {
	a := &arc{
		key:      key,
		edge:     edge,
		reverse:  reverse,
		src:      src,
		tgt:      tgt,
		capacity: capacity,
		cost:     bigm.Of(cost),
		status:   NonbasicLower,
		pos:      -1,
	}
	e.nonbasic.add(a)
	src.incident = append(src.incident, a)
	if tgt != src {
		tgt.incident = append(tgt.incident, a)
	}
	return a
}

// sortedNodes returns nodes ordered by ID.
func (e *Engine) sortedNodes() []*node {
	ids := maps.Keys(e.nodes)
	slices.Sort(ids)
	out := make([]*node, len(ids))
	for i, id := range ids {
		out[i] = e.nodes[id]
	}
	return out
}

// sortedEdges returns edges ordered by ID.
func (e *Engine) sortedEdges() []*edgeArcs {
	ids := maps.Keys(e.edges)
	slices.Sort(ids)
	out := make([]*edgeArcs, len(ids))
	for i, id := range ids {
		out[i] = e.edges[id]
	}
	return out
}

// coldStart hangs every node from the root through its artificial arc,
// oriented by the sign of its supply and carrying |supply|.
// Zero-supply nodes point toward the root so the basis is strongly feasible.
func (e *Engine) coldStart() {
	nodes := e.sortedNodes()
	for i := len(nodes) - 1; i >= 0; i-- {
		e.hangFromRoot(nodes[i])
	}
}

// hangFromRoot makes v's artificial arc basic with flow |supply(v)| and
// inserts v as a leaf of the root.
func (e *Engine) hangFromRoot(v *node) {
	a := v.artificial
	orientArtificial(a, v, e.root, v.supply >= 0)
	a.flow = abs(v.supply)
	a.status = Basic
	e.objective.ScaledAdd(a.flow, a.cost)
	attachLeaf(v, e.root, a)
}

// orientArtificial points a from v to root when towardRoot holds, else from root to v.
func orientArtificial(a *arc, v, root *node, towardRoot bool) {
	if towardRoot {
		a.src, a.tgt = v, root
	} else {
		a.src, a.tgt = root, v
	}
}

// warmStart installs the spanning tree described by links. Flows on tree arcs
// follow from the supplies; a tree needing negative or over-capacity flow on a
// real arc is rejected with ErrBadBasis and leaves the engine untouched.
func (e *Engine) warmStart(links map[string]TreeLink) error {
	nodes := e.sortedNodes()

	// 1) Resolve every link to an arc and group children by parent.
	tree := make(map[*node]*arc, len(links))
	children := make(map[*node][]*node, len(nodes))
	for _, v := range nodes {
		l, ok := links[v.id]
		if !ok {
			children[e.root] = append(children[e.root], v)
			continue
		}
		p, ok := e.nodes[l.Parent]
		if !ok || p == v {
			return fmt.Errorf("%w: node %q has parent %q", ErrBadBasis, v.id, l.Parent)
		}
		ea, ok := e.edges[l.EdgeID]
		if !ok {
			return fmt.Errorf("%w: node %q links through unknown edge %q", ErrBadBasis, v.id, l.EdgeID)
		}
		a := ea.fwd
		if l.Reverse {
			a = ea.rev
		}
		if a == nil || !((a.src == v && a.tgt == p) || (a.src == p && a.tgt == v)) {
			return fmt.Errorf("%w: edge %q does not join %q and %q", ErrBadBasis, l.EdgeID, v.id, p.id)
		}
		tree[v] = a
		children[p] = append(children[p], v)
	}

	// 2) Preorder from the root; every node must be reached exactly once.
	order := make([]*node, 0, len(nodes))
	depth := map[*node]int{e.root: 0}
	stack := []*node{e.root}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if u != e.root {
			order = append(order, u)
		}
		kids := children[u]
		for i := len(kids) - 1; i >= 0; i-- {
			depth[kids[i]] = depth[u] + 1
			stack = append(stack, kids[i])
		}
	}
	if len(order) != len(nodes) {
		return fmt.Errorf("%w: links contain a cycle", ErrBadBasis)
	}

	// 3) Flows bottom-up: the tree arc of v carries the net supply of v's subtree.
	sub := make(map[*node]int64, len(nodes))
	flow := make(map[*node]int64, len(nodes))
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		sub[v] += v.supply
		parent := e.root
		if a, ok := tree[v]; ok {
			parent = a.other(v)
			f := sub[v]
			if a.tgt == v {
				f = -f
			}
			if f < 0 || (a.capacity != Unlimited && f > a.capacity) {
				return fmt.Errorf("%w: arc %q would carry %d", ErrBadBasis, a.key, f)
			}
			flow[v] = f
		}
		sub[parent] += sub[v]
	}

	// 4) Commit.
	prev := e.root
	for _, v := range order {
		a, inTree := tree[v]
		if !inTree {
			a = v.artificial
			orientArtificial(a, v, e.root, sub[v] >= 0)
			flow[v] = abs(sub[v])
		} else {
			e.nonbasic.remove(a)
		}
		a.flow = flow[v]
		a.status = Basic
		e.objective.ScaledAdd(a.flow, a.cost)

		v.arcToParent = a
		if inTree {
			v.parent = a.other(v)
		} else {
			v.parent = e.root
		}
		v.depth = depth[v]
		prev.thread = v
		prev = v
	}
	prev.thread = e.root
	for _, v := range nodes {
		if v.artificial.status != Basic {
			e.parked.add(v.artificial)
		}
	}
	if len(order) > 0 {
		refreshSubtree(order[0], order[len(order)-1])
	}
	return nil
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
