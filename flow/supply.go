package flow

import (
	"github.com/katalvlaran/lvlath-simplex/core"
)

// MaxShipment routes as much supply as possible to demand: vertex supplies
// (opts.SupplyAttr, positive = source, negative = sink) feed a synthetic
// super source and super sink, and Dinic runs between them.
//
// For a min-cost-flow network, Shortfall() of the result is the least
// amount of flow any solution must leave on artificial arcs.
func MaxShipment(g *core.Graph, opts FlowOptions) (Shipment, error) {
	opts.normalize()
	n := buildNetwork(g, opts, 2)
	s, t := len(n.ids), len(n.ids)+1

	var sh Shipment
	for i, id := range n.ids {
		v, err := g.Vertex(id)
		if err != nil {
			return Shipment{}, err
		}
		sup, ok := core.Int64Attr(v.Attrs, opts.SupplyAttr)
		switch {
		case !ok:
		case sup > 0:
			n.addArc(s, i, sup)
			sh.Supply += sup
		case sup < 0:
			n.addArc(i, t, -sup)
			sh.Demand -= sup
		}
	}

	shipped, err := n.dinic(opts, s, t)
	if err != nil {
		return Shipment{}, err
	}
	sh.Shipped = shipped
	opts.Logger.V(1).Info("max shipment", "supply", sh.Supply, "demand", sh.Demand, "shipped", sh.Shipped)

	return sh, nil
}
