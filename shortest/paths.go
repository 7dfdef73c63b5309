package shortest

import (
	"fmt"

	"github.com/katalvlaran/lvlath-simplex/simplex"
)

// ready computes lazily and maps terminal statuses to path errors.
func (e *Engine) ready() error {
	if e.source == "" {
		return ErrNoSource
	}
	st, err := e.flow.Compute()
	if err != nil {
		return err
	}
	if st == simplex.Unbounded {
		return ErrNegativeCycle
	}
	return nil
}

// PathLength returns the length of a shortest path from the source to id,
// or Infinity when id is unreachable.
//
// The length is the potential drop between the source and id. Unreachable
// nodes are fed through their artificial arc, so the drop carries an M
// component.
func (e *Engine) PathLength(id string) (int64, error) {
	if err := e.ready(); err != nil {
		return 0, err
	}
	ps, err := e.flow.Potential(e.source)
	if err != nil {
		return 0, err
	}
	pv, err := e.flow.Potential(id)
	if err != nil {
		return 0, err
	}
	d := ps.Minus(pv)
	if d.IsInfinite() {
		return Infinity, nil
	}
	return d.Finite, nil
}

// PathLengths returns PathLength for every node.
func (e *Engine) PathLengths() (map[string]int64, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	out := make(map[string]int64)
	for _, id := range e.flow.NodeIDs() {
		d, err := e.PathLength(id)
		if err != nil {
			return nil, err
		}
		out[id] = d
	}
	return out, nil
}

// NodeIter walks a shortest path backwards, from the target to the source.
// It is lazy and cannot be restarted; mutating the engine mid-walk ends it
// in an unspecified place.
type NodeIter struct {
	steps *stepper
	first bool
	done  bool
}

// Next returns the next node, or false once the source has been returned.
func (it *NodeIter) Next() (string, bool) {
	if it.done {
		return "", false
	}
	if it.first {
		it.first = false
		it.done = it.steps.at == it.steps.source
		return it.steps.at, true
	}
	arc, ok := it.steps.next()
	if !ok {
		it.done = true
		return "", false
	}
	it.done = arc.From == it.steps.source
	return arc.From, true
}

// EdgeIter walks the edges of a shortest path backwards, from the target to
// the source. Like NodeIter it is lazy and cannot be restarted.
type EdgeIter struct {
	steps *stepper
}

// Next returns the next arc, or false once the source has been reached.
// ArcRef.Reverse tells which arc of an undirected edge the path uses.
func (it *EdgeIter) Next() (simplex.ArcRef, bool) {
	return it.steps.next()
}

// PathNodes returns an iterator over the nodes of the path to id, target first.
func (e *Engine) PathNodes(id string) (*NodeIter, error) {
	s, err := e.walk(id)
	if err != nil {
		return nil, err
	}
	return &NodeIter{steps: s, first: true}, nil
}

// PathEdges returns an iterator over the edges of the path to id, target first.
func (e *Engine) PathEdges(id string) (*EdgeIter, error) {
	s, err := e.walk(id)
	if err != nil {
		return nil, err
	}
	return &EdgeIter{steps: s}, nil
}

// Path materializes the shortest path to id in source-to-target order.
func (e *Engine) Path(id string) (Path, error) {
	s, err := e.walk(id)
	if err != nil {
		return Path{}, err
	}
	length, err := e.PathLength(id)
	if err != nil {
		return Path{}, err
	}

	nodes := []string{id}
	var edges []string
	for {
		arc, ok := s.next()
		if !ok {
			break
		}
		nodes = append(nodes, arc.From)
		edges = append(edges, arc.EdgeID)
	}
	reverse(nodes)
	reverse(edges)
	return Path{Nodes: nodes, Edges: edges, Length: length}, nil
}

func (e *Engine) walk(id string) (*stepper, error) {
	d, err := e.PathLength(id)
	if err != nil {
		return nil, err
	}
	if d == Infinity {
		return nil, fmt.Errorf("%w: %q", ErrUnreachable, id)
	}
	return &stepper{flow: e.flow, source: e.source, at: id}, nil
}

// stepper follows Inflow arcs from a reachable node back to the source.
type stepper struct {
	flow   *simplex.Engine
	source string
	at     string
}

func (s *stepper) next() (simplex.ArcRef, bool) {
	if s.at == s.source {
		return simplex.ArcRef{}, false
	}
	arc, ok, err := s.flow.Inflow(s.at)
	if err != nil || !ok || arc.Artificial {
		s.at = s.source
		return simplex.ArcRef{}, false
	}
	s.at = arc.From
	return arc, true
}

func reverse(xs []string) {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
}
