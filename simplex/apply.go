package simplex

import (
	"fmt"

	"github.com/katalvlaran/lvlath-simplex/core"
)

// Apply processes one graph mutation. Attribute events are filtered to the
// configured supply, capacity and cost keys; everything else is ignored.
//
// Typical wiring:
//
//	cancel := g.Subscribe(func(ev core.Event) {
//		if err := eng.Apply(ev); err != nil {
//			log.Error(err, "apply", "event", ev.String())
//		}
//	})
func (e *Engine) Apply(ev core.Event) error {
	if err := e.ready(); err != nil {
		return err
	}

	switch ev.Kind {
	case core.NodeAdded:
		return e.AddNode(ev.Vertex, e.opts.supplyOf(ev.Vertex, ev.Attrs))

	case core.NodeRemoved:
		return e.RemoveNode(ev.Vertex)

	case core.EdgeAdded:
		return e.AddEdge(ev.Edge, ev.From, ev.To, ev.Directed,
			e.opts.costOf(ev.Attrs), e.opts.capacityOf(ev.Attrs))

	case core.EdgeRemoved:
		return e.RemoveEdge(ev.Edge)

	case core.NodeAttrAdded, core.NodeAttrChanged, core.NodeAttrRemoved:
		if e.opts.Supply != nil || !matches(ev.Key, e.opts.SupplyAttr) {
			return nil
		}
		s, _ := core.AsInt64(ev.Value)
		if ev.Kind == core.NodeAttrRemoved {
			s = 0
		}
		return e.SetSupply(ev.Vertex, s)

	case core.EdgeAttrAdded, core.EdgeAttrChanged, core.EdgeAttrRemoved:
		removed := ev.Kind == core.EdgeAttrRemoved
		switch {
		case matches(ev.Key, e.opts.CostAttr):
			c, ok := core.AsInt64(ev.Value)
			if removed || !ok {
				c = e.opts.DefaultCost
			}
			return e.SetCost(ev.Edge, c)
		case matches(ev.Key, e.opts.CapacityAttr):
			c, ok := core.AsInt64(ev.Value)
			if removed {
				ok = false
			}
			return e.SetCapacity(ev.Edge, normCapacity(c, ok))
		}
		return nil
	}

	return fmt.Errorf("simplex: unsupported event %s", ev.Kind)
}

func matches(key, configured string) bool {
	return configured != "" && key == configured
}
