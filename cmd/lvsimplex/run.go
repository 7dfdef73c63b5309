package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"
	"go.uber.org/multierr"

	"github.com/katalvlaran/lvlath-simplex/core"
	"github.com/katalvlaran/lvlath-simplex/flow"
	"github.com/katalvlaran/lvlath-simplex/netfile"
	"github.com/katalvlaran/lvlath-simplex/shortest"
	"github.com/katalvlaran/lvlath-simplex/simplex"
)

var errShortfall = errors.New("infeasibility disagrees with max flow")

// solver is the part of both engines the driver needs.
type solver interface {
	Compute() (simplex.SolutionStatus, error)
	Apply(ev core.Event) error
	Simplex() *simplex.Engine
	verify(g *core.Graph, log logr.Logger) error
	report(w io.Writer, g *core.Graph) error
}

func run(opts options, log logr.Logger, out io.Writer) error {
	g, err := load(opts.file)
	if err != nil {
		return err
	}
	log.Info("loaded problem", "file", opts.file, "nodes", g.VertexCount(), "edges", g.EdgeCount())

	var cmds []netfile.Command
	if opts.script != "" {
		f, err := os.Open(opts.script)
		if err != nil {
			return err
		}
		cmds, err = netfile.ReadScript(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("script %s: %w", opts.script, err)
		}
	}

	s, err := newSolver(opts, log, g)
	if err != nil {
		return err
	}

	var applyErr error
	cancel := g.Subscribe(func(ev core.Event) {
		if err := s.Apply(ev); err != nil {
			applyErr = multierr.Append(applyErr, fmt.Errorf("%s: %w", ev, err))
		}
	})
	defer cancel()

	step := func(label string) error {
		if applyErr != nil {
			return applyErr
		}
		if _, err := s.Compute(); err != nil {
			return err
		}
		if opts.check {
			if err := s.verify(g, log); err != nil {
				return fmt.Errorf("check after %s: %w", label, err)
			}
		}
		fmt.Fprintf(out, "== %s\n", label)
		return s.report(out, g)
	}

	if err := step("initial"); err != nil {
		return err
	}
	return netfile.Replay(g, cmds, func(line int) error {
		return step(fmt.Sprintf("line %d", line))
	})
}

// load picks the reader by file extension; anything but .hcl is DIMACS.
func load(path string) (*core.Graph, error) {
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return netfile.ReadHCLFile(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := netfile.ReadDIMACS(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

func newSolver(opts options, log logr.Logger, g *core.Graph) (solver, error) {
	if opts.source == "" {
		eng := simplex.New(simplex.WithPricing(opts.pricing), simplex.WithLogger(log))
		if err := eng.Init(g); err != nil {
			return nil, err
		}
		return flowSolver{eng}, nil
	}

	// Problem files carry costs; reuse them as lengths.
	sp := shortest.New(
		shortest.WithLengthAttr(netfile.AttrCost),
		shortest.WithPricing(opts.pricing),
		shortest.WithLogger(log))
	if err := sp.SetSource(opts.source); err != nil {
		return nil, err
	}
	if err := sp.Init(g); err != nil {
		return nil, err
	}
	return pathSolver{sp}, nil
}

type flowSolver struct {
	*simplex.Engine
}

func (s flowSolver) Simplex() *simplex.Engine { return s.Engine }

// verify checks the basis and compares the artificial flow with the
// shortfall an independent max-flow run predicts.
func (s flowSolver) verify(g *core.Graph, log logr.Logger) error {
	if err := s.Check(); err != nil {
		return err
	}
	if s.Status() == simplex.Unbounded {
		return nil
	}
	sh, err := flow.MaxShipment(g, flow.FlowOptions{
		CapacityAttr: netfile.AttrCapacity,
		SupplyAttr:   netfile.AttrSupply,
		Logger:       log.WithName("maxflow"),
	})
	if err != nil {
		return err
	}
	if got := s.Infeasibility(); got != sh.Shortfall() {
		return fmt.Errorf("%w: infeasibility %d, max-flow shortfall %d", errShortfall, got, sh.Shortfall())
	}
	return nil
}

func (s flowSolver) report(w io.Writer, g *core.Graph) error {
	st := s.Stats()
	fmt.Fprintf(w, "status %s cost %d infeasibility %d balance %d pivots %d\n",
		s.Status(), s.Cost(), s.Infeasibility(), s.NetworkBalance(), st.Pivots)
	if s.Status() == simplex.Unbounded {
		return nil
	}

	for _, e := range g.Edges() {
		for _, reverse := range []bool{false, true} {
			if reverse && e.Directed {
				continue
			}
			f, err := s.Flow(e.ID, reverse)
			if err != nil {
				return err
			}
			if f == 0 {
				continue
			}
			from, to := e.From, e.To
			if reverse {
				from, to = to, from
			}
			fmt.Fprintf(w, "flow %s %s->%s %d\n", e.ID, from, to, f)
		}
	}
	if s.Status() == simplex.Infeasible {
		for _, id := range g.Vertices() {
			x, err := s.NodeInfeasibility(id)
			if err != nil {
				return err
			}
			if x != 0 {
				fmt.Fprintf(w, "unserved %s %d\n", id, x)
			}
		}
	}
	return nil
}

type pathSolver struct {
	*shortest.Engine
}

func (s pathSolver) verify(*core.Graph, logr.Logger) error {
	return s.Simplex().Check()
}

func (s pathSolver) report(w io.Writer, g *core.Graph) error {
	if s.Source() == "" {
		fmt.Fprintln(w, "no source")
		return nil
	}
	lengths, err := s.PathLengths()
	if errors.Is(err, shortest.ErrNegativeCycle) {
		fmt.Fprintln(w, "negative cycle")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "source %s pivots %d\n", s.Source(), s.Simplex().Stats().Pivots)
	for _, id := range g.Vertices() {
		if lengths[id] == shortest.Infinity {
			fmt.Fprintf(w, "node %s unreachable\n", id)
			continue
		}
		p, err := s.Path(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "node %s length %d path %s\n", id, p.Length, strings.Join(p.Nodes, ">"))
	}
	return nil
}
