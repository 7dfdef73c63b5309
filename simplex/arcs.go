package simplex

import (
	"github.com/katalvlaran/lvlath-simplex/bigm"
)

// node is a vertex of the network together with its place in the spanning tree.
//
// The root is synthetic: its parent and, for an empty tree, its thread point
// to itself and its depth is 0. thread links all nodes in tree preorder as a
// circular list starting at the root.
type node struct {
	id        string
	supply    int64
	potential bigm.Value

	parent      *node
	thread      *node
	depth       int
	arcToParent *arc
	artificial  *arc

	incident []*arc // real arcs touching this node
}

// arc is one direction of an edge, or an artificial root connector.
type arc struct {
	key     string // unique arc key
	edge    string // owning edge ID, "" for artificial arcs
	reverse bool

	src, tgt   *node
	capacity   int64
	cost       bigm.Value
	flow       int64
	status     ArcStatus
	artificial bool

	pos int // index in its nonbasic set, -1 when basic
}

// room is the amount the flow can still grow, infinite when uncapacitated.
func (a *arc) room() int64 {
	if a.capacity == Unlimited {
		return infinite
	}
	return a.capacity - a.flow
}

// other returns the endpoint of a opposite to v.
func (a *arc) other(v *node) *node {
	if a.src == v {
		return a.tgt
	}
	return a.src
}

// edgeArcs groups the arcs generated for one edge.
type edgeArcs struct {
	id       string
	directed bool
	fwd, rev *arc // rev is nil for directed edges
}

func (e *edgeArcs) arcs() []*arc {
	if e.rev == nil {
		return []*arc{e.fwd}
	}
	return []*arc{e.fwd, e.rev}
}

// arcSet is an insertion-ordered set of nonbasic arcs with O(1) removal.
// Removal moves the last element into the freed slot, so scan order depends
// only on the sequence of operations.
type arcSet struct {
	items []*arc
}

func (s *arcSet) add(a *arc) {
	a.pos = len(s.items)
	s.items = append(s.items, a)
}

func (s *arcSet) remove(a *arc) {
	enforce(a.pos >= 0 && a.pos < len(s.items) && s.items[a.pos] == a, "arc not in set:", a.key)
	last := s.items[len(s.items)-1]
	s.items[a.pos] = last
	last.pos = a.pos
	s.items[len(s.items)-1] = nil
	s.items = s.items[:len(s.items)-1]
	a.pos = -1
}

func (s *arcSet) len() int { return len(s.items) }

func removeIncident(v *node, a *arc) {
	for i, x := range v.incident {
		if x == a {
			last := len(v.incident) - 1
			v.incident[i] = v.incident[last]
			v.incident[last] = nil
			v.incident = v.incident[:last]
			return
		}
	}
}
