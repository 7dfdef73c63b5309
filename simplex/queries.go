package simplex

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/lvlath-simplex/bigm"
)

// ArcRef describes one arc of the network as seen from the outside.
// Artificial arcs have an empty EdgeID and the root is the empty node ID.
type ArcRef struct {
	EdgeID     string
	Reverse    bool
	From, To   string
	Flow       int64
	Artificial bool
}

// Initialized reports whether Init has run since the last Terminate.
func (e *Engine) Initialized() bool { return e.initialized }

// Status returns the current solution status.
func (e *Engine) Status() SolutionStatus { return e.status }

// Cost returns the real part of the objective, Σ flow·cost over real arcs.
func (e *Engine) Cost() int64 { return e.objective.Finite }

// Objective returns the full big-M objective.
func (e *Engine) Objective() bigm.Value { return e.objective }

// Infeasibility returns the total flow on artificial arcs.
func (e *Engine) Infeasibility() int64 { return e.objective.Infinite }

// NodeInfeasibility returns the flow on id's artificial arc.
func (e *Engine) NodeInfeasibility(id string) (int64, error) {
	v, err := e.node(id)
	if err != nil {
		return 0, err
	}
	return v.artificial.flow, nil
}

// NetworkBalance returns the sum of all node supplies. A nonzero balance
// can only be absorbed by artificial arcs.
func (e *Engine) NetworkBalance() int64 { return -e.root.supply }

// Flow returns the flow on the forward arc of edgeID, or on its reverse arc
// when reverse is set.
func (e *Engine) Flow(edgeID string, reverse bool) (int64, error) {
	a, err := e.arc(edgeID, reverse)
	if err != nil {
		return 0, err
	}
	return a.flow, nil
}

// ArcStatus returns the basis status of an arc.
func (e *Engine) ArcStatus(edgeID string, reverse bool) (ArcStatus, error) {
	a, err := e.arc(edgeID, reverse)
	if err != nil {
		return 0, err
	}
	return a.status, nil
}

// Parent returns the tree parent of id, "" when it hangs from the root.
func (e *Engine) Parent(id string) (string, error) {
	v, err := e.node(id)
	if err != nil {
		return "", err
	}
	return v.parent.id, nil
}

// EdgeFromParent returns the edge joining id to its tree parent and whether
// the reverse arc is used. The edge is "" when the tree arc is artificial.
func (e *Engine) EdgeFromParent(id string) (string, bool, error) {
	v, err := e.node(id)
	if err != nil {
		return "", false, err
	}
	return v.arcToParent.edge, v.arcToParent.reverse, nil
}

// Potential returns the dual value of id.
func (e *Engine) Potential(id string) (bigm.Value, error) {
	v, err := e.node(id)
	if err != nil {
		return bigm.Zero, err
	}
	return v.potential, nil
}

// Supply returns the current supply of id.
func (e *Engine) Supply(id string) (int64, error) {
	v, err := e.node(id)
	if err != nil {
		return 0, err
	}
	return v.supply, nil
}

// HasNode reports whether id is part of the network.
func (e *Engine) HasNode(id string) bool {
	_, ok := e.nodes[id]
	return ok
}

// NodeIDs returns all node IDs in ascending order.
func (e *Engine) NodeIDs() []string {
	ids := maps.Keys(e.nodes)
	slices.Sort(ids)
	return ids
}

// EdgeIDs returns all edge IDs in ascending order.
func (e *Engine) EdgeIDs() []string {
	ids := maps.Keys(e.edges)
	slices.Sort(ids)
	return ids
}

// Directed reports whether edgeID has a single arc.
func (e *Engine) Directed(edgeID string) (bool, error) {
	ea, err := e.edge(edgeID)
	if err != nil {
		return false, err
	}
	return ea.directed, nil
}

// Stats returns pivot and mutation counters plus the current network size.
func (e *Engine) Stats() Stats {
	s := e.stats
	s.Nodes = len(e.nodes)
	s.Arcs = e.nonbasic.len()
	for _, v := range e.nodes {
		if a := v.arcToParent; a != nil && !a.artificial {
			s.Arcs++
		}
	}
	return s
}

// Inflow returns the tree arc delivering positive flow into id. With unit
// demands at every node but one, that arc is unique.
func (e *Engine) Inflow(id string) (ArcRef, bool, error) {
	v, err := e.node(id)
	if err != nil {
		return ArcRef{}, false, err
	}
	feeds := func(a *arc) bool {
		return a.status == Basic && a.flow > 0 && a.tgt == v && a.src != v
	}
	for _, a := range v.incident {
		if feeds(a) {
			return e.ref(a), true, nil
		}
	}
	if feeds(v.artificial) {
		return e.ref(v.artificial), true, nil
	}
	return ArcRef{}, false, nil
}

func (e *Engine) ref(a *arc) ArcRef {
	return ArcRef{
		EdgeID:     a.edge,
		Reverse:    a.reverse,
		From:       a.src.id,
		To:         a.tgt.id,
		Flow:       a.flow,
		Artificial: a.artificial,
	}
}

func (e *Engine) arc(edgeID string, reverse bool) (*arc, error) {
	ea, err := e.edge(edgeID)
	if err != nil {
		return nil, err
	}
	if !reverse {
		return ea.fwd, nil
	}
	if ea.rev == nil {
		return nil, fmt.Errorf("%w: %q", ErrArcNotFound, edgeID)
	}
	return ea.rev, nil
}
