package simplex

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/katalvlaran/lvlath-simplex/bigm"
)

// Check verifies the basis invariants and reports every violation found:
//
//   - the basic arcs span all nodes and thread/depth/parent agree;
//   - potentials give every basic arc a zero reduced cost;
//   - flows respect bounds, nonbasic arcs sit at a bound, and every node
//     (root included) conserves flow;
//   - the objective equals Σ flow·cost;
//   - when Optimal, no artificial flow remains;
//   - when Optimal or Infeasible, no nonbasic real arc has an improving
//     reduced cost, and when Infeasible no parked artificial arc improves
//     in either direction.
//
// Check is meant for tests and diagnostics; it walks the whole network.
func (e *Engine) Check() error {
	if err := e.ready(); err != nil {
		return err
	}
	var errs error
	fail := func(format string, args ...interface{}) {
		errs = multierr.Append(errs, fmt.Errorf(format, args...))
	}

	// Tree shape.
	seen := 0
	basic := 0
	for u := e.root.thread; u != e.root; u = u.thread {
		seen++
		if seen > len(e.nodes) {
			fail("thread does not return to the root")
			break
		}
		if e.nodes[u.id] != u {
			fail("thread visits unknown node %q", u.id)
			continue
		}
		if u.depth != u.parent.depth+1 {
			fail("node %q: depth %d, parent depth %d", u.id, u.depth, u.parent.depth)
		}
		a := u.arcToParent
		if a == nil || a.status != Basic {
			fail("node %q: tree arc missing or not basic", u.id)
			continue
		}
		basic++
		if !((a.src == u && a.tgt == u.parent) || (a.tgt == u && a.src == u.parent)) {
			fail("node %q: tree arc %q does not reach parent %q", u.id, a.key, u.parent.id)
			continue
		}
		want := u.parent.potential
		if a.src == u {
			want.Add(a.cost)
		} else {
			want.Sub(a.cost)
		}
		if want != u.potential {
			fail("node %q: potential %s, want %s", u.id, u.potential, want)
		}
	}
	if seen != len(e.nodes) {
		fail("thread visits %d of %d nodes", seen, len(e.nodes))
	}

	// Arcs, bounds and the objective.
	objective := bigm.Zero
	terminal := e.status == Optimal || e.status == Infeasible
	excess := map[*node]int64{e.root: e.root.supply}
	for _, v := range e.nodes {
		excess[v] += v.supply
	}
	visit := func(a *arc) {
		objective.ScaledAdd(a.flow, a.cost)
		excess[a.src] -= a.flow
		excess[a.tgt] += a.flow
		if a.flow < 0 || (a.capacity != Unlimited && a.flow > a.capacity) {
			fail("arc %q: flow %d outside [0, %d]", a.key, a.flow, a.capacity)
		}
		switch a.status {
		case NonbasicLower:
			if a.flow != 0 {
				fail("arc %q: at lower bound with flow %d", a.key, a.flow)
			}
		case NonbasicUpper:
			if a.flow != a.capacity {
				fail("arc %q: at upper bound with flow %d, capacity %d", a.key, a.flow, a.capacity)
			}
		case Basic:
			if lowerEnd(a) == nil {
				fail("arc %q: basic but not a tree arc", a.key)
			}
		}
		if !terminal || a.status == Basic {
			return
		}
		if !a.artificial && reducedCost(a).IsNegative() {
			fail("arc %q: %s with reduced cost %s", a.key, a.status, reducedCost(a))
		}
		if a.artificial && e.status == Infeasible && (reducedCost(a).IsNegative() || reversedCost(a).IsNegative()) {
			fail("artificial arc %q: improves with reduced cost %s / %s reversed", a.key, reducedCost(a), reversedCost(a))
		}
	}
	for _, ea := range e.edges {
		for _, a := range ea.arcs() {
			visit(a)
		}
	}
	for _, v := range e.nodes {
		visit(v.artificial)
	}
	for v, x := range excess {
		if x != 0 {
			fail("node %q: flow imbalance %d", v.id, x)
		}
	}
	if basic != len(e.nodes) {
		fail("%d basic tree arcs for %d nodes", basic, len(e.nodes))
	}
	if objective != e.objective {
		fail("objective %s, recomputed %s", e.objective, objective)
	}
	if e.status == Optimal && objective.Infinite != 0 {
		fail("optimal status with artificial flow %d", objective.Infinite)
	}

	return errs
}

// lowerEnd is lowerEndpoint without the invariant panic.
func lowerEnd(a *arc) *node {
	switch {
	case a.src.arcToParent == a:
		return a.src
	case a.tgt.arcToParent == a:
		return a.tgt
	}
	return nil
}
