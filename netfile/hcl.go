package netfile

import (
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	"go.uber.org/multierr"

	"github.com/katalvlaran/lvlath-simplex/core"
)

// AttrLength is the edge attribute the shortest-path engine reads by default.
const AttrLength = "length"

// hclNetwork is the top-level structure of a network file.
type hclNetwork struct {
	Directed *bool      `hcl:"directed,optional"`
	Nodes    []*hclNode `hcl:"node,block"`
	Edges    []*hclEdge `hcl:"edge,block"`
}

type hclNode struct {
	ID     string `hcl:"id,label"`
	Supply *int64 `hcl:"supply,optional"`
}

type hclEdge struct {
	ID       string `hcl:"id,label"`
	From     string `hcl:"from"`
	To       string `hcl:"to"`
	Directed *bool  `hcl:"directed,optional"`
	Cost     *int64 `hcl:"cost,optional"`
	Capacity *int64 `hcl:"capacity,optional"`
	Length   *int64 `hcl:"length,optional"`
}

// ReadHCL parses a network description:
//
//	directed = true            # default direction of edges, true when omitted
//
//	node "plant" { supply = 3 }
//	edge "p-s" {
//	  from     = "plant"
//	  to       = "store"
//	  cost     = 2
//	  capacity = 5             # omitted: unlimited
//	  directed = false         # overrides the default
//	}
//
// Edges may name nodes without a node block; those get supply 0.
func ReadHCL(src []byte, filename string) (*core.Graph, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return decodeHCL(file, filename)
}

// ReadHCLFile is ReadHCL on the contents of path.
func ReadHCLFile(path string) (*core.Graph, error) {
	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	return decodeHCL(file, path)
}

func decodeHCL(file *hcl.File, filename string) (*core.Graph, error) {
	var net hclNetwork
	if diags := gohcl.DecodeBody(file.Body, nil, &net); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	directed := true
	if net.Directed != nil {
		directed = *net.Directed
	}
	g := core.NewGraph(core.WithDirected(directed), core.WithMultiEdges())

	var errs error
	for _, n := range net.Nodes {
		if g.HasVertex(n.ID) {
			errs = multierr.Append(errs, fmt.Errorf("%w: node %q", ErrDuplicate, n.ID))
			continue
		}
		attrs := map[string]interface{}{}
		if n.Supply != nil {
			attrs[AttrSupply] = *n.Supply
		}
		if err := g.AddVertex(n.ID, attrs); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("node %q: %w", n.ID, err))
		}
	}
	for _, e := range net.Edges {
		opts := []core.EdgeOption{core.WithEdgeID(e.ID)}
		if e.Directed != nil {
			opts = append(opts, core.WithEdgeDirected(*e.Directed))
		}
		for key, v := range map[string]*int64{AttrCost: e.Cost, AttrCapacity: e.Capacity, AttrLength: e.Length} {
			if v != nil {
				opts = append(opts, core.WithEdgeAttr(key, *v))
			}
		}
		if _, err := g.AddEdge(e.From, e.To, opts...); err != nil {
			if errors.Is(err, core.ErrEdgeExists) {
				err = ErrDuplicate
			}
			errs = multierr.Append(errs, fmt.Errorf("edge %q: %w", e.ID, err))
		}
	}
	if errs != nil {
		return nil, errs
	}
	return g, nil
}

// WriteHCL writes g in the format ReadHCL accepts. Only numeric supply,
// cost, capacity and length attributes are kept.
func WriteHCL(w io.Writer, g *core.Graph) error {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	body.SetAttributeValue("directed", cty.BoolVal(g.Directed()))

	for _, id := range g.Vertices() {
		v, err := g.Vertex(id)
		if err != nil {
			return err
		}
		body.AppendNewline()
		blk := body.AppendNewBlock("node", []string{id}).Body()
		if s, ok := core.Int64Attr(v.Attrs, AttrSupply); ok {
			blk.SetAttributeValue("supply", cty.NumberIntVal(s))
		}
	}
	for _, e := range g.Edges() {
		body.AppendNewline()
		blk := body.AppendNewBlock("edge", []string{e.ID}).Body()
		blk.SetAttributeValue("from", cty.StringVal(e.From))
		blk.SetAttributeValue("to", cty.StringVal(e.To))
		if e.Directed != g.Directed() {
			blk.SetAttributeValue("directed", cty.BoolVal(e.Directed))
		}
		for _, key := range []string{AttrCost, AttrCapacity, AttrLength} {
			if x, ok := core.Int64Attr(e.Attrs, key); ok {
				blk.SetAttributeValue(key, cty.NumberIntVal(x))
			}
		}
	}

	_, err := f.WriteTo(w)
	return err
}
