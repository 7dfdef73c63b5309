package netfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/katalvlaran/lvlath-simplex/core"
)

// Attribute keys written by the readers and read by the writers.
const (
	AttrSupply   = "supply"
	AttrCost     = "cost"
	AttrCapacity = "capacity"
)

// unlimited is written for edges without a capacity; ReadDIMACS maps any
// negative capacity back to "no capacity attribute".
const unlimited = -1

// ReadDIMACS parses a DIMACS minimum-cost-flow problem.
//
// Nodes 1..N become vertices "1".."N" unless a "c node K ID" comment, as
// written by WriteDIMACS, names node K. The k-th arc line becomes directed
// edge "a<k>" with cost and capacity attributes. Every malformed line is
// reported, not just the first one.
func ReadDIMACS(r io.Reader) (*core.Graph, error) {
	type arcLine struct {
		line           int
		from, to       int64
		capacity, cost int64
	}
	var (
		errs     error
		n, m     int64
		problem  bool
		supplies = map[int64]int64{}
		arcs     []arcLine
		names    = map[int64]string{}
		named    = map[int64]int{} // node -> line of its name comment
	)
	lineErr := func(line int, err error, format string, args ...interface{}) {
		errs = multierr.Append(errs, fmt.Errorf("line %d: %w: %s", line, err, fmt.Sprintf(format, args...)))
	}
	node := func(line int, field string) (int64, bool) {
		id, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			lineErr(line, ErrSyntax, "node %q", field)
			return 0, false
		}
		if id < 1 || id > n {
			lineErr(line, ErrNodeRange, "node %d not in 1..%d", id, n)
			return 0, false
		}
		return id, true
	}

	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		f := strings.Fields(sc.Text())
		if len(f) == 0 {
			continue
		}
		if f[0] == "c" {
			if len(f) >= 4 && f[1] == "node" {
				k, err := strconv.ParseInt(f[2], 10, 64)
				if err != nil {
					lineErr(line, ErrSyntax, "want \"c node K ID\"")
					continue
				}
				if _, dup := named[k]; dup {
					lineErr(line, ErrDuplicate, "node %d named twice", k)
					continue
				}
				names[k], named[k] = strings.Join(f[3:], " "), line
			}
			continue
		}
		if f[0] != "p" && !problem {
			lineErr(line, ErrNoProblemLine, "%q before problem line", f[0])
			continue
		}

		switch f[0] {
		case "p":
			if problem {
				lineErr(line, ErrSyntax, "second problem line")
				continue
			}
			nums, ok := ints(f, 2, 4)
			if !ok || f[1] != "min" || nums[2] < 0 || nums[3] < 0 {
				lineErr(line, ErrSyntax, "want \"p min N M\"")
				continue
			}
			problem = true
			n, m = nums[2], nums[3]

		case "n":
			nums, ok := ints(f, 2, 3)
			if !ok {
				lineErr(line, ErrSyntax, "want \"n ID FLOW\"")
				continue
			}
			if id, ok := node(line, f[1]); ok {
				supplies[id] = nums[2]
			}

		case "a":
			nums, ok := ints(f, 1, 6)
			if !ok {
				lineErr(line, ErrSyntax, "want \"a SRC DST LOW CAP COST\"")
				continue
			}
			arcs = append(arcs, arcLine{line: line})
			from, okFrom := node(line, f[1])
			to, okTo := node(line, f[2])
			if !okFrom || !okTo {
				continue
			}
			if nums[3] != 0 {
				lineErr(line, ErrLowerBound, "low %d", nums[3])
				continue
			}
			arcs[len(arcs)-1] = arcLine{line: line, from: from, to: to, capacity: nums[4], cost: nums[5]}

		default:
			lineErr(line, ErrSyntax, "unknown line type %q", f[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if !problem {
		return nil, multierr.Append(errs, ErrNoProblemLine)
	}
	if int64(len(arcs)) != m {
		errs = multierr.Append(errs, fmt.Errorf("%w: declared %d, found %d", ErrArcCount, m, len(arcs)))
	}

	// Resolve vertex names; a name must be unique among all N vertices.
	ids := make([]string, n+1)
	owner := make(map[string]int64, n)
	for k := int64(1); k <= n; k++ {
		ids[k] = strconv.FormatInt(k, 10)
		if name, ok := names[k]; ok {
			ids[k] = name
		}
	}
	for k, line := range named {
		if k < 1 || k > n {
			lineErr(line, ErrNodeRange, "named node %d not in 1..%d", k, n)
		}
	}
	for k := int64(1); k <= n; k++ {
		if prev, dup := owner[ids[k]]; dup {
			errs = multierr.Append(errs, fmt.Errorf("%w: nodes %d and %d are both %q", ErrDuplicate, prev, k, ids[k]))
			continue
		}
		owner[ids[k]] = k
	}
	if errs != nil {
		return nil, errs
	}

	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	for k := int64(1); k <= n; k++ {
		var attrs map[string]interface{}
		if s, ok := supplies[k]; ok {
			attrs = map[string]interface{}{AttrSupply: s}
		}
		if err := g.AddVertex(ids[k], attrs); err != nil {
			return nil, err
		}
	}
	for i, a := range arcs {
		opts := []core.EdgeOption{
			core.WithEdgeID("a" + strconv.Itoa(i+1)),
			core.WithEdgeAttr(AttrCost, a.cost),
		}
		if a.capacity >= 0 {
			opts = append(opts, core.WithEdgeAttr(AttrCapacity, a.capacity))
		}
		if _, err := g.AddEdge(ids[a.from], ids[a.to], opts...); err != nil {
			lineErr(a.line, err, "arc %d->%d", a.from, a.to)
		}
	}
	if errs != nil {
		return nil, errs
	}
	return g, nil
}

// ints parses f[from:] as int64s into the same positions, requiring exactly
// want fields in total.
func ints(f []string, from, want int) ([]int64, bool) {
	if len(f) != want {
		return nil, false
	}
	out := make([]int64, want)
	for i := from; i < want; i++ {
		x, err := strconv.ParseInt(f[i], 10, 64)
		if err != nil {
			return nil, false
		}
		out[i] = x
	}
	return out, true
}

// WriteDIMACS writes g as a DIMACS minimum-cost-flow problem.
//
// Vertices are numbered 1..N in ID order, with "c node K ID" comment lines
// recording the mapping so that ReadDIMACS restores the IDs. An undirected edge becomes two opposite arcs, which
// is how the simplex engine models it anyway. Missing costs are written as 1
// and missing capacities as -1.
func WriteDIMACS(w io.Writer, g *core.Graph) error {
	ids := g.Vertices()
	num := make(map[string]int, len(ids))
	for i, id := range ids {
		num[id] = i + 1
	}
	edges := g.Edges()
	m := 0
	for _, e := range edges {
		m++
		if !e.Directed {
			m++
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "c written by lvlath-simplex\n")
	fmt.Fprintf(bw, "p min %d %d\n", len(ids), m)
	for _, id := range ids {
		fmt.Fprintf(bw, "c node %d %s\n", num[id], id)
	}
	for _, id := range ids {
		v, err := g.Vertex(id)
		if err != nil {
			return err
		}
		if s, ok := core.Int64Attr(v.Attrs, AttrSupply); ok && s != 0 {
			fmt.Fprintf(bw, "n %d %d\n", num[id], s)
		}
	}
	for _, e := range edges {
		cost, ok := core.Int64Attr(e.Attrs, AttrCost)
		if !ok {
			cost = 1
		}
		capacity, ok := core.Int64Attr(e.Attrs, AttrCapacity)
		if !ok || capacity < 0 {
			capacity = unlimited
		}
		fmt.Fprintf(bw, "a %d %d 0 %d %d\n", num[e.From], num[e.To], capacity, cost)
		if !e.Directed {
			fmt.Fprintf(bw, "a %d %d 0 %d %d\n", num[e.To], num[e.From], capacity, cost)
		}
	}
	return bw.Flush()
}
