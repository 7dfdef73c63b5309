// File: dynamic.go
// Role: incremental maintenance of the basis under graph mutations.
// Contract:
//   - Every mutation leaves a valid basic feasible tree: flows conserve and
//     respect bounds, potentials and the objective are consistent.
//   - A mutation performs at most a few forced pivots; re-optimization is left
//     to the next Compute.
//   - The status drops to Undefined when the current basis may have stopped
//     being optimal, and always when it was Unbounded.

package simplex

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/lvlath-simplex/bigm"
)

// AddNode inserts a node hanging from the root through its artificial arc.
func (e *Engine) AddNode(id string, supply int64) error {
	if err := e.ready(); err != nil {
		return err
	}
	if id == "" {
		return ErrEmptyID
	}
	if _, ok := e.nodes[id]; ok {
		return fmt.Errorf("%w: %q", ErrNodeExists, id)
	}

	v := e.newNode(id, supply)
	e.hangFromRoot(v)
	e.invalidate()
	e.mutated("add node", "node", id, "supply", supply)
	return nil
}

// RemoveNode removes every incident edge, zeroes the supply, then unlinks the
// node from the tree.
func (e *Engine) RemoveNode(id string) error {
	v, err := e.node(id)
	if err != nil {
		return err
	}

	var ids []string
	for _, a := range v.incident {
		if !slices.Contains(ids, a.edge) {
			ids = append(ids, a.edge)
		}
	}
	slices.Sort(ids)
	for _, eid := range ids {
		e.removeEdge(e.edges[eid])
	}
	e.setSupply(v, 0)

	a := v.artificial
	enforce(v.arcToParent == a && a.flow == 0, "node", id, "still carries flow")
	detachLeaf(v)
	delete(e.nodes, id)
	e.invalidate()
	e.mutated("remove node", "node", id, "edges", len(ids))
	return nil
}

// AddEdge inserts the arcs of an edge at their lower bound. A negative
// capacity means Unlimited.
func (e *Engine) AddEdge(id, from, to string, directed bool, cost, capacity int64) error {
	if err := e.ready(); err != nil {
		return err
	}
	if id == "" {
		return ErrEmptyID
	}
	if strings.HasPrefix(id, ReservedPrefix) {
		return fmt.Errorf("%w: %q", ErrReservedID, id)
	}
	if _, ok := e.edges[id]; ok {
		return fmt.Errorf("%w: %q", ErrEdgeExists, id)
	}
	for _, n := range []string{from, to} {
		if _, ok := e.nodes[n]; !ok {
			return fmt.Errorf("%w: %q", ErrNodeNotFound, n)
		}
	}

	ea := e.newEdge(id, from, to, directed, cost, normCapacity(capacity, true))
	for _, a := range ea.arcs() {
		if reducedCost(a).IsNegative() {
			e.invalidate()
		}
	}
	e.mutated("add edge", "edge", id, "from", from, "to", to, "directed", directed)
	return nil
}

// RemoveEdge drives the edge's arcs out of the basis and deletes them.
func (e *Engine) RemoveEdge(id string) error {
	ea, err := e.edge(id)
	if err != nil {
		return err
	}
	e.removeEdge(ea)
	e.mutated("remove edge", "edge", id)
	return nil
}

func (e *Engine) removeEdge(ea *edgeArcs) {
	for _, a := range ea.arcs() {
		e.setCapacity(a, 0)
		if a.status == Basic {
			// Zero flow: swap in the child's artificial arc pointing to the root.
			v := lowerEndpoint(a)
			art := v.artificial
			enforce(art.status != Basic && a.flow == 0, "cannot detach", a.key)
			e.parked.remove(art)
			orientArtificial(art, v, e.root, true)
			art.flow = 0
			art.status = Basic
			a.status = NonbasicLower
			changeParent(v, e.root, art)
		} else {
			e.nonbasic.remove(a)
		}
		removeIncident(a.src, a)
		removeIncident(a.tgt, a)
	}
	delete(e.edges, ea.id)
	e.invalidate()
}

// SetSupply changes a node's supply and restores conservation through its
// artificial arc.
func (e *Engine) SetSupply(id string, supply int64) error {
	v, err := e.node(id)
	if err != nil {
		return err
	}
	e.setSupply(v, supply)
	e.mutated("set supply", "node", id, "supply", supply)
	return nil
}

func (e *Engine) setSupply(v *node, supply int64) {
	d := supply - v.supply
	if d == 0 {
		return
	}
	v.supply = supply
	e.root.supply -= d
	e.rebalance(v)
}

// SetCapacity changes the capacity of an edge's arcs. A negative capacity
// means Unlimited.
func (e *Engine) SetCapacity(id string, capacity int64) error {
	ea, err := e.edge(id)
	if err != nil {
		return err
	}
	c := normCapacity(capacity, true)
	for _, a := range ea.arcs() {
		e.setCapacity(a, c)
	}
	e.mutated("set capacity", "edge", id, "capacity", c)
	return nil
}

func (e *Engine) setCapacity(a *arc, c int64) {
	if a.status == NonbasicUpper {
		enforce(e.pivot(a), "forced pivot on", a.key, "unbounded")
		e.invalidate()
	}
	a.capacity = c
	if a.status != Basic || c == Unlimited || a.flow <= c {
		return
	}

	// Clip and hand the excess back to the endpoints.
	excess := a.flow - c
	a.flow = c
	e.objective.ScaledAdd(-excess, a.cost)
	e.rebalance(a.src)
	e.rebalance(a.tgt)
	e.invalidate()
}

// SetCost changes the cost of an edge's arcs.
func (e *Engine) SetCost(id string, cost int64) error {
	ea, err := e.edge(id)
	if err != nil {
		return err
	}
	c := bigm.Of(cost)
	for _, a := range ea.arcs() {
		d := c.Minus(a.cost)
		if d.IsZero() {
			continue
		}
		e.objective.ScaledAdd(a.flow, d)
		a.cost = c
		if a.status == Basic {
			v := lowerEndpoint(a)
			refreshSubtree(v, lastSuccessor(v))
			e.invalidate()
		} else if reducedCost(a).IsNegative() {
			e.invalidate()
		}
	}
	e.mutated("set cost", "edge", id, "cost", cost)
	return nil
}

// rebalance makes v's artificial arc basic and sets its flow so that v
// conserves flow again. The root absorbs the difference.
func (e *Engine) rebalance(v *node) {
	a := v.artificial
	if a.status != Basic {
		if !e.pivot(a) {
			// The other orientation pushes against at least one tree arc's flow.
			a.src, a.tgt = a.tgt, a.src
			enforce(e.pivot(a), "artificial arc", a.key, "unbounded both ways")
		}
	}
	enforce(v.arcToParent == a, "artificial arc", a.key, "is not the tree arc of", v.id)

	r := e.excess(v, a)
	flow := abs(r)
	e.objective.ScaledAdd(flow-a.flow, a.cost)
	a.flow = flow
	if towardRoot := r >= 0; (a.src == v) != towardRoot {
		orientArtificial(a, v, e.root, towardRoot)
		refreshSubtree(v, lastSuccessor(v))
	}
	e.invalidate()
}

// excess is supply plus inflow minus outflow at v, ignoring arc skip.
func (e *Engine) excess(v *node, skip *arc) int64 {
	x := v.supply
	arcs := append([]*arc{v.artificial}, v.incident...)
	for _, a := range arcs {
		if a == skip {
			continue
		}
		if a.tgt == v {
			x += a.flow
		}
		if a.src == v {
			x -= a.flow
		}
	}
	return x
}

func (e *Engine) invalidate() {
	e.setStatus(Undefined)
}

func (e *Engine) setStatus(s SolutionStatus) {
	if e.status == s {
		return
	}
	e.status = s
	if e.opts.Hooks.OnStatus != nil {
		e.opts.Hooks.OnStatus(s)
	}
}

// mutated records a completed mutation. Unbounded never survives one.
func (e *Engine) mutated(what string, kv ...interface{}) {
	e.stats.Mutations++
	if e.status == Unbounded {
		e.invalidate()
	}
	e.log.V(2).Info(what, append(kv, "status", e.status.String())...)
}

func (e *Engine) ready() error {
	if !e.initialized {
		return ErrNotInitialized
	}
	return nil
}

func (e *Engine) node(id string) (*node, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	v, ok := e.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	return v, nil
}

func (e *Engine) edge(id string) (*edgeArcs, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	ea, ok := e.edges[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrEdgeNotFound, id)
	}
	return ea, nil
}
