// File: pivot.go
// Role: pricing, leaving-arc selection and basis exchange.
// Tie-break:
//   - The cycle is oriented along the push direction of the entering arc and
//     the leaving arc is the last blocking arc met when walking it from the
//     join. This keeps the basis strongly feasible: every node can send a
//     positive amount of flow to the root along its tree path.

package simplex

import (
	"github.com/katalvlaran/lvlath-simplex/bigm"
)

// reducedCost of a, sign-flipped for arcs at their upper bound so that a
// negative value always means an improving push.
func reducedCost(a *arc) bigm.Value {
	rc := a.cost.Minus(a.src.potential).Plus(a.tgt.potential)
	if a.status == NonbasicUpper {
		rc.Neg()
	}
	return rc
}

// selectEntering picks the next arc to enter the basis, or nil when none improves.
// Parked artificial arcs are priced only while the objective carries M, and
// in both directions: a parked arc carries no flow, so it can be turned
// around before it enters.
func (e *Engine) selectEntering() *arc {
	var best *arc
	var bestRC bigm.Value
	bestFlip := false

	scan := func(s *arcSet, bothWays bool) bool {
		for _, a := range s.items {
			rc, flip := reducedCost(a), false
			if bothWays {
				if rev := reversedCost(a); rev.Cmp(rc) < 0 {
					rc, flip = rev, true
				}
			}
			if !rc.IsNegative() {
				continue
			}
			if e.opts.Pricing == FirstNegative {
				best, bestFlip = a, flip
				return true
			}
			if best == nil || rc.Cmp(bestRC) < 0 {
				best, bestRC, bestFlip = a, rc, flip
			}
		}
		return false
	}

	if !scan(&e.nonbasic, false) && e.objective.Infinite != 0 {
		scan(&e.parked, true)
	}
	if best != nil && bestFlip {
		enforce(best.flow == 0, "turning arc", best.key, "with flow", best.flow)
		best.src, best.tgt = best.tgt, best.src
	}
	return best
}

// reversedCost is the reduced cost a would have if it pointed the other way.
func reversedCost(a *arc) bigm.Value {
	return a.cost.Minus(a.tgt.potential).Plus(a.src.potential)
}

// pivotCtx carries the state of a single pivot.
type pivotCtx struct {
	entering *arc
	rc       bigm.Value // signed reduced cost of the push direction

	first, second *node // tail and head of the push through entering
	join          *node

	delta          int64
	leaving        *arc
	leavingOnFirst bool
	leavingUp      bool  // the leaving arc's flow grows during the push
	out            *node // child endpoint of the leaving arc
}

func newPivotCtx(in *arc) *pivotCtx {
	pc := &pivotCtx{entering: in, rc: reducedCost(in), leaving: in}
	if in.status == NonbasicUpper {
		pc.first, pc.second = in.tgt, in.src
		pc.delta = in.flow
	} else {
		pc.first, pc.second = in.src, in.tgt
		pc.delta = in.room()
		pc.leavingUp = true
	}
	return pc
}

// findJoin locates the nearest common ancestor of first and second.
func (pc *pivotCtx) findJoin() {
	a, b := pc.first, pc.second
	for a.depth > b.depth {
		a = a.parent
	}
	for b.depth > a.depth {
		b = b.parent
	}
	for a != b {
		enforce(a.depth > 0, "no common ancestor for", pc.entering.key)
		a, b = a.parent, b.parent
	}
	pc.join = a
}

// findLeaving walks both sides of the cycle bottom-up. The first side is
// walked with a strict comparison, the second with a non-strict one, which
// selects the last blocking arc in cycle orientation.
func (pc *pivotCtx) findLeaving() {
	for u := pc.first; u != pc.join; u = u.parent {
		a := u.arcToParent
		down := a.tgt == u
		r := a.flow
		if down {
			r = a.room()
		}
		if r < pc.delta {
			pc.delta, pc.leaving, pc.out = r, a, u
			pc.leavingOnFirst, pc.leavingUp = true, down
		}
	}
	for u := pc.second; u != pc.join; u = u.parent {
		a := u.arcToParent
		up := a.src == u
		r := a.flow
		if up {
			r = a.room()
		}
		if r <= pc.delta {
			pc.delta, pc.leaving, pc.out = r, a, u
			pc.leavingOnFirst, pc.leavingUp = false, up
		}
	}
}

// push sends delta units around the cycle.
func (pc *pivotCtx) push() {
	d := pc.delta
	if d == 0 {
		return
	}
	if pc.entering.status == NonbasicUpper {
		pc.entering.flow -= d
	} else {
		pc.entering.flow += d
	}
	for u := pc.first; u != pc.join; u = u.parent {
		a := u.arcToParent
		if a.tgt == u {
			a.flow += d
		} else {
			a.flow -= d
		}
		enforce(a.flow >= 0, "negative flow on", a.key)
	}
	for u := pc.second; u != pc.join; u = u.parent {
		a := u.arcToParent
		if a.src == u {
			a.flow += d
		} else {
			a.flow -= d
		}
		enforce(a.flow >= 0, "negative flow on", a.key)
	}
}

// stallLimit bounds a run of degenerate pivots before Compute falls back to
// a cold start.
func (e *Engine) stallLimit() int {
	if e.stallAfter > 0 {
		return e.stallAfter
	}
	return 2 * (len(e.nodes) + e.nonbasic.len() + e.parked.len())
}

// restartCold drops the current basis and rebuilds the big-M cold start:
// every real arc at its lower bound, every node hanging from the root.
func (e *Engine) restartCold() {
	for _, ea := range e.sortedEdges() {
		for _, a := range ea.arcs() {
			if a.status == Basic {
				e.nonbasic.add(a)
			}
			a.flow, a.status = 0, NonbasicLower
		}
	}
	for _, v := range e.nodes {
		if a := v.artificial; a.status != Basic {
			e.parked.remove(a)
		}
		v.artificial.flow = 0
		v.parent, v.thread, v.arcToParent = nil, nil, nil
	}
	e.root.thread = e.root
	e.objective = bigm.Zero
	e.coldStart()
	e.stats.Restarts++
	e.log.V(1).Info("cold restart after degenerate stall", "pivots", e.stats.Pivots)
}

// pivot brings in into the basis. It reports false, leaving every field
// untouched, when the cycle through in admits unlimited flow.
func (e *Engine) pivot(in *arc) bool {
	pc := newPivotCtx(in)
	pc.findJoin()
	pc.findLeaving()
	if pc.delta == infinite {
		return false
	}

	pc.push()
	e.objective.ScaledAdd(pc.delta, pc.rc)
	e.stats.Pivots++
	if pc.delta == 0 {
		e.stats.DegeneratePivots++
	}

	if pc.leaving == in {
		// in blocks itself: it only moves to its other bound.
		if in.status == NonbasicUpper {
			in.status = NonbasicLower
		} else {
			in.status = NonbasicUpper
		}
	} else {
		e.exchange(pc)
		if in.artificial && e.opts.Hooks.OnArtificialEnter != nil {
			e.opts.Hooks.OnArtificialEnter(e.owner(in).id)
		}
	}

	if v := e.log.V(3); v.Enabled() {
		v.Info("pivot", "in", in.key, "out", pc.leaving.key, "delta", pc.delta,
			"rc", pc.rc.String(), "objective", e.objective.String())
	}
	return true
}

// exchange swaps the entering and leaving arcs in the basis and re-hangs the
// subtree cut off by the leaving arc below the entering arc.
func (e *Engine) exchange(pc *pivotCtx) {
	in, out := pc.entering, pc.leaving

	e.setOf(in).remove(in)
	in.status = Basic
	out.status = NonbasicLower
	if pc.leavingUp {
		out.status = NonbasicUpper
	}
	e.setOf(out).add(out)

	inNode, inParent := pc.second, pc.first
	if pc.leavingOnFirst {
		inNode, inParent = pc.first, pc.second
	}

	// Reverse the tree path inNode → ... → pc.out.
	path := []*node{inNode}
	for u := inNode; u != pc.out; {
		u = u.parent
		enforce(u.depth > 0, "leaving arc", out.key, "is not above", inNode.id)
		path = append(path, u)
	}
	oldArcs := make([]*arc, len(path))
	for i, u := range path {
		oldArcs[i] = u.arcToParent
	}

	changeParent(path[0], inParent, in)
	for i := 1; i < len(path); i++ {
		changeParent(path[i], path[i-1], oldArcs[i-1])
	}
}

// setOf returns the nonbasic set a belongs to.
func (e *Engine) setOf(a *arc) *arcSet {
	if a.artificial {
		return &e.parked
	}
	return &e.nonbasic
}

// owner returns the non-root endpoint of an artificial arc.
func (e *Engine) owner(a *arc) *node {
	if a.src == e.root {
		return a.tgt
	}
	return a.src
}

// Compute pivots until no arc improves the objective or an unbounded cycle
// appears. It is a no-op once the status is terminal.
func (e *Engine) Compute() (SolutionStatus, error) {
	if err := e.ready(); err != nil {
		return Undefined, err
	}
	if e.status != Undefined {
		return e.status, nil
	}

	start := e.stats.Pivots
	stalled, restarted := 0, false
	for {
		in := e.selectEntering()
		if in == nil {
			if e.objective.Infinite == 0 {
				e.setStatus(Optimal)
			} else {
				e.setStatus(Infeasible)
			}
			break
		}
		degenerate := e.stats.DegeneratePivots
		if !e.pivot(in) {
			e.log.V(2).Info("unbounded cycle", "arc", in.key)
			e.setStatus(Unbounded)
			break
		}

		// A mutated basis may not be strongly feasible, so a degenerate run
		// is not guaranteed to end. The cold basis is, and keeps being so.
		if e.stats.DegeneratePivots == degenerate {
			stalled = 0
			continue
		}
		if stalled++; !restarted && stalled > e.stallLimit() {
			e.restartCold()
			restarted, stalled = true, 0
		}
	}

	e.log.V(1).Info("compute finished", "status", e.status.String(),
		"pivots", e.stats.Pivots-start, "cost", e.objective.Finite,
		"infeasibility", e.objective.Infinite)
	return e.status, nil
}
