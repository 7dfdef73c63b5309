// File: tree.go
// Role: parent/thread/depth spanning-tree maintenance.
// Invariants:
//   - thread is a circular preorder walk starting at the root.
//   - depth(v) = depth(parent(v)) + 1, depth(root) = 0.
//   - potential(root) = 0 and every basic arc has zero reduced cost.

package simplex

// previousInThread returns the node whose thread points at v.
// v must not be the root. Complexity: O(size of parent's subtree).
func previousInThread(v *node) *node {
	p := v.parent
	for p.thread != v {
		p = p.thread
		enforce(p != v.parent, "node", v.id, "missing from its parent's thread")
	}
	return p
}

// lastSuccessor returns the last node of v's subtree in preorder.
// Complexity: O(size of v's subtree).
func lastSuccessor(v *node) *node {
	last := v
	for last.thread.depth > v.depth {
		last = last.thread
	}
	return last
}

// computePotential sets v's potential from its parent's so that the arc to
// the parent has zero reduced cost. Complexity: O(1).
func computePotential(v *node) {
	a := v.arcToParent
	v.potential = v.parent.potential
	if a.src == v {
		v.potential.Add(a.cost)
	} else {
		v.potential.Sub(a.cost)
	}
}

// attachLeaf inserts v directly after parent in the thread.
func attachLeaf(v, parent *node, a *arc) {
	v.parent = parent
	v.arcToParent = a
	v.depth = parent.depth + 1
	v.thread = parent.thread
	parent.thread = v
	computePotential(v)
}

// detachLeaf unlinks a childless node from the thread.
func detachLeaf(v *node) {
	enforce(v.thread.depth <= v.depth, "detaching node", v.id, "with children")
	prev := previousInThread(v)
	prev.thread = v.thread
	v.parent, v.thread, v.arcToParent = nil, nil, nil
}

// changeParent moves v's subtree below newParent through arc a, then
// refreshes depth and potential of every moved node.
// newParent must lie outside v's subtree. Complexity: O(subtree + depth).
func changeParent(v, newParent *node, a *arc) {
	last := lastSuccessor(v)
	prev := previousInThread(v)
	prev.thread = last.thread

	last.thread = newParent.thread
	newParent.thread = v
	v.parent = newParent
	v.arcToParent = a

	refreshSubtree(v, last)
}

// refreshSubtree recomputes depth and potential for the preorder range
// [v, last]. Parents always precede their children in that range.
func refreshSubtree(v, last *node) {
	for u := v; ; u = u.thread {
		u.depth = u.parent.depth + 1
		computePotential(u)
		if u == last {
			return
		}
	}
}

// lowerEndpoint returns the child-side endpoint of basic arc a.
func lowerEndpoint(a *arc) *node {
	if a.src.arcToParent == a {
		return a.src
	}
	enforce(a.tgt.arcToParent == a, "basic arc", a.key, "is no node's tree arc")
	return a.tgt
}
