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

// Op is a mutation script verb.
type Op string

const (
	OpAddNode        Op = "an"      // an ID [supply]
	OpRemoveNode     Op = "dn"      // dn ID
	OpAddEdge        Op = "ae"      // ae ID FROM TO [d|u] [cost] [capacity]
	OpRemoveEdge     Op = "de"      // de ID
	OpSetNodeAttr    Op = "sn"      // sn ID KEY VALUE
	OpSetEdgeAttr    Op = "se"      // se ID KEY VALUE
	OpRemoveNodeAttr Op = "rn"      // rn ID KEY
	OpRemoveEdgeAttr Op = "re"      // re ID KEY
	OpCompute        Op = "compute" // compute
)

// arity lists the accepted field counts per verb, verb included.
var arity = map[Op][2]int{
	OpAddNode:        {2, 3},
	OpRemoveNode:     {2, 2},
	OpAddEdge:        {4, 7},
	OpRemoveEdge:     {2, 2},
	OpSetNodeAttr:    {4, 4},
	OpSetEdgeAttr:    {4, 4},
	OpRemoveNodeAttr: {3, 3},
	OpRemoveEdgeAttr: {3, 3},
	OpCompute:        {1, 1},
}

// Command is one parsed script line.
type Command struct {
	Line     int
	Op       Op
	ID       string
	From, To string
	Directed *bool // OpAddEdge: nil keeps the graph default
	Key      string
	Value    interface{}            // int64 when numeric, string otherwise
	Attrs    map[string]interface{} // OpAddNode supply, OpAddEdge cost and capacity
}

// ReadScript parses a mutation script. Blank lines and text after '#' are
// ignored. All malformed lines are reported together.
func ReadScript(r io.Reader) ([]Command, error) {
	var (
		cmds []Command
		errs error
	)
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		f := strings.Fields(text)
		if len(f) == 0 {
			continue
		}
		cmd, err := parseCommand(f)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		cmd.Line = line
		cmds = append(cmds, cmd)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if errs != nil {
		return nil, errs
	}
	return cmds, nil
}

func parseCommand(f []string) (Command, error) {
	op := Op(f[0])
	n, ok := arity[op]
	if !ok {
		return Command{}, fmt.Errorf("%w %q", ErrUnknownCommand, f[0])
	}
	if len(f) < n[0] || len(f) > n[1] {
		return Command{}, fmt.Errorf("%w: %s takes %d to %d fields, got %d", ErrSyntax, op, n[0]-1, n[1]-1, len(f)-1)
	}

	cmd := Command{Op: op}
	if len(f) > 1 {
		cmd.ID = f[1]
	}
	switch op {
	case OpAddNode:
		if len(f) == 3 {
			s, err := strconv.ParseInt(f[2], 10, 64)
			if err != nil {
				return Command{}, fmt.Errorf("%w: supply %q", ErrSyntax, f[2])
			}
			cmd.Attrs = map[string]interface{}{AttrSupply: s}
		}

	case OpAddEdge:
		cmd.From, cmd.To = f[2], f[3]
		rest := f[4:]
		if len(rest) > 0 && (rest[0] == "d" || rest[0] == "u") {
			d := rest[0] == "d"
			cmd.Directed = &d
			rest = rest[1:]
		}
		if len(rest) > 2 {
			return Command{}, fmt.Errorf("%w: trailing field %q", ErrSyntax, rest[2])
		}
		cmd.Attrs = map[string]interface{}{}
		for i, key := range []string{AttrCost, AttrCapacity}[:len(rest)] {
			x, err := strconv.ParseInt(rest[i], 10, 64)
			if err != nil {
				return Command{}, fmt.Errorf("%w: %s %q", ErrSyntax, key, rest[i])
			}
			cmd.Attrs[key] = x
		}

	case OpSetNodeAttr, OpSetEdgeAttr:
		cmd.Key = f[2]
		if x, err := strconv.ParseInt(f[3], 10, 64); err == nil {
			cmd.Value = x
		} else {
			cmd.Value = f[3]
		}

	case OpRemoveNodeAttr, OpRemoveEdgeAttr:
		cmd.Key = f[2]
	}
	return cmd, nil
}

// Replay applies cmds to g in order and calls onCompute for every compute
// line. It stops at the first failure.
func Replay(g *core.Graph, cmds []Command, onCompute func(line int) error) error {
	for _, c := range cmds {
		var err error
		switch c.Op {
		case OpAddNode:
			if g.HasVertex(c.ID) {
				err = fmt.Errorf("%w: node %q", ErrDuplicate, c.ID)
			} else {
				err = g.AddVertex(c.ID, c.Attrs)
			}
		case OpRemoveNode:
			err = g.RemoveVertex(c.ID)
		case OpAddEdge:
			opts := []core.EdgeOption{core.WithEdgeID(c.ID), core.WithEdgeAttrs(c.Attrs)}
			if c.Directed != nil {
				opts = append(opts, core.WithEdgeDirected(*c.Directed))
			}
			_, err = g.AddEdge(c.From, c.To, opts...)
		case OpRemoveEdge:
			err = g.RemoveEdge(c.ID)
		case OpSetNodeAttr:
			err = g.SetVertexAttr(c.ID, c.Key, c.Value)
		case OpSetEdgeAttr:
			err = g.SetEdgeAttr(c.ID, c.Key, c.Value)
		case OpRemoveNodeAttr:
			err = g.RemoveVertexAttr(c.ID, c.Key)
		case OpRemoveEdgeAttr:
			err = g.RemoveEdgeAttr(c.ID, c.Key)
		case OpCompute:
			if onCompute != nil {
				err = onCompute(c.Line)
			}
		default:
			err = fmt.Errorf("%w %q", ErrUnknownCommand, c.Op)
		}
		if err != nil {
			return fmt.Errorf("line %d: %s: %w", c.Line, c.Op, err)
		}
	}
	return nil
}
