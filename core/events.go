// File: events.go
// Role: Mutation stream. Every committed change to a Graph is described by one
//       self-contained Event and delivered synchronously to subscribers.
// Ordering:
//   - Events are delivered in commit order, one at a time.
//   - RemoveVertex emits EdgeRemoved for each incident edge (edge ID asc)
//     before NodeRemoved.
//   - AddEdge emits NodeAdded for implicitly created endpoints before EdgeAdded.
// Concurrency:
//   - Observers run after the graph locks are released, so they may query
//     (or even mutate) the graph. Callers that mutate from several goroutines
//     must serialize themselves if observers need a total order.

package core

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// EventKind enumerates the mutation types a Graph reports.
type EventKind uint8

const (
	NodeAdded EventKind = iota
	NodeRemoved
	EdgeAdded
	EdgeRemoved
	NodeAttrAdded
	NodeAttrChanged
	NodeAttrRemoved
	EdgeAttrAdded
	EdgeAttrChanged
	EdgeAttrRemoved
)

var eventKindNames = [...]string{
	NodeAdded:       "NodeAdded",
	NodeRemoved:     "NodeRemoved",
	EdgeAdded:       "EdgeAdded",
	EdgeRemoved:     "EdgeRemoved",
	NodeAttrAdded:   "NodeAttrAdded",
	NodeAttrChanged: "NodeAttrChanged",
	NodeAttrRemoved: "NodeAttrRemoved",
	EdgeAttrAdded:   "EdgeAttrAdded",
	EdgeAttrChanged: "EdgeAttrChanged",
	EdgeAttrRemoved: "EdgeAttrRemoved",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}

	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event describes one committed mutation.
//
// Fields are populated per kind:
//
//	NodeAdded                 Vertex, Attrs
//	NodeRemoved               Vertex
//	EdgeAdded                 Edge, From, To, Directed, Attrs
//	EdgeRemoved               Edge, From, To, Directed
//	NodeAttr{Added,Changed}   Vertex, Key, Value
//	NodeAttrRemoved           Vertex, Key
//	EdgeAttr{Added,Changed}   Edge, Key, Value
//	EdgeAttrRemoved           Edge, Key
//
// Attrs is a private copy; consumers may keep it.
type Event struct {
	Kind     EventKind
	Vertex   string
	Edge     string
	From     string
	To       string
	Directed bool
	Key      string
	Value    interface{}
	Attrs    map[string]interface{}
}

func (e Event) String() string {
	switch e.Kind {
	case NodeAdded, NodeRemoved:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Vertex)
	case EdgeAdded, EdgeRemoved:
		return fmt.Sprintf("%s(%s %s→%s directed=%t)", e.Kind, e.Edge, e.From, e.To, e.Directed)
	case NodeAttrAdded, NodeAttrChanged, NodeAttrRemoved:
		return fmt.Sprintf("%s(%s.%s=%v)", e.Kind, e.Vertex, e.Key, e.Value)
	default:
		return fmt.Sprintf("%s(%s.%s=%v)", e.Kind, e.Edge, e.Key, e.Value)
	}
}

// Subscribe registers fn to receive every future Event and returns a cancel
// function that unregisters it. Cancel is idempotent.
//
// Complexity: O(1).
func (g *Graph) Subscribe(fn func(Event)) (cancel func()) {
	g.muSubs.Lock()
	g.nextSubID++
	id := g.nextSubID
	g.subscribers[id] = fn
	g.muSubs.Unlock()

	return func() {
		g.muSubs.Lock()
		delete(g.subscribers, id)
		g.muSubs.Unlock()
	}
}

// emit delivers events to all subscribers in subscription order.
// Must be called without holding muVert or muEdgeAdj.
func (g *Graph) emit(events ...Event) {
	if len(events) == 0 {
		return
	}
	g.muSubs.Lock()
	ids := maps.Keys(g.subscribers)
	slices.Sort(ids)
	fns := make([]func(Event), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, g.subscribers[id])
	}
	g.muSubs.Unlock()

	for _, ev := range events {
		for _, fn := range fns {
			fn(ev)
		}
	}
}
