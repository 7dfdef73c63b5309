package netfile_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/katalvlaran/lvlath-simplex/core"
	"github.com/katalvlaran/lvlath-simplex/netfile"
	"github.com/katalvlaran/lvlath-simplex/simplex"
)

const tiny = `c two routes from 1 to 3
p min 3 3
n 1 4
n 3 -4
a 1 2 0 4 1
a 2 3 0 -1 1
a 1 3 0 10 5
`

func solve(t *testing.T, g *core.Graph) *simplex.Engine {
	t.Helper()
	eng := simplex.New()
	require.NoError(t, eng.Init(g))
	_, err := eng.Compute()
	require.NoError(t, err)
	return eng
}

func TestReadDIMACS(t *testing.T) {
	g, err := netfile.ReadDIMACS(strings.NewReader(tiny))
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2", "3"}, g.Vertices())
	require.Equal(t, 3, g.EdgeCount())

	a2, err := g.Edge("a2")
	require.NoError(t, err)
	require.True(t, a2.Directed)
	_, hasCap := a2.Attrs[netfile.AttrCapacity]
	require.False(t, hasCap, "negative capacity reads as unlimited")

	eng := solve(t, g)
	require.Equal(t, simplex.Optimal, eng.Status())
	require.Equal(t, int64(8), eng.Cost())
}

func TestReadDIMACSErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []error
	}{
		{"NoProblemLine", "n 1 2\n", []error{netfile.ErrNoProblemLine, netfile.ErrNoProblemLine}},
		{"Empty", "", []error{netfile.ErrNoProblemLine}},
		{"BadProblem", "p max 2 0\n", []error{netfile.ErrSyntax, netfile.ErrNoProblemLine}},
		{"NodeRange", "p min 2 1\na 1 3 0 1 1\n", []error{netfile.ErrNodeRange}},
		{"LowerBound", "p min 2 1\na 1 2 1 3 1\n", []error{netfile.ErrLowerBound}},
		{"ArcCount", "p min 2 2\na 1 2 0 3 1\n", []error{netfile.ErrArcCount}},
		{"Garbage", "p min 2 0\nx\nn 1\n", []error{netfile.ErrSyntax, netfile.ErrSyntax}},
		{"SelfLoop", "p min 1 1\na 1 1 0 1 1\n", []error{core.ErrLoopNotAllowed}},
		{"NamedTwice", "p min 2 0\nc node 1 x\nc node 1 y\n", []error{netfile.ErrDuplicate}},
		{"NamedOutOfRange", "p min 2 0\nc node 3 x\n", []error{netfile.ErrNodeRange}},
		{"NameCollides", "p min 2 0\nc node 1 2\n", []error{netfile.ErrDuplicate}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := netfile.ReadDIMACS(strings.NewReader(tc.in))
			require.Error(t, err)
			errs := multierr.Errors(err)
			require.Len(t, errs, len(tc.want), err.Error())
			for i, want := range tc.want {
				require.ErrorIs(t, errs[i], want)
			}
		})
	}
}

func TestWriteDIMACSRoundTrip(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddVertex("plant", map[string]interface{}{netfile.AttrSupply: 3}))
	require.NoError(t, g.AddVertex("store", map[string]interface{}{netfile.AttrSupply: -3}))
	_, err := g.AddEdge("plant", "hub", core.WithEdgeAttr(netfile.AttrCost, 2))
	require.NoError(t, err)
	_, err = g.AddEdge("hub", "store", core.WithEdgeDirected(false),
		core.WithEdgeAttr(netfile.AttrCost, 1), core.WithEdgeAttr(netfile.AttrCapacity, 2))
	require.NoError(t, err)
	_, err = g.AddEdge("plant", "store", core.WithEdgeAttr(netfile.AttrCost, 7))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, netfile.WriteDIMACS(&buf, g))
	require.Contains(t, buf.String(), "p min 3 4\n")
	require.Contains(t, buf.String(), "c node 1 hub\n")

	back, err := netfile.ReadDIMACS(&buf)
	require.NoError(t, err)
	require.Equal(t, 4, back.EdgeCount())
	require.Equal(t, g.Vertices(), back.Vertices())
	plant, err := back.Vertex("plant")
	require.NoError(t, err)
	require.Equal(t, int64(3), plant.Attrs[netfile.AttrSupply])
	require.True(t, back.HasEdge("hub", "store"))
	require.True(t, back.HasEdge("store", "hub"))

	want, got := solve(t, g), solve(t, back)
	require.Equal(t, simplex.Optimal, got.Status())
	require.Equal(t, want.Cost(), got.Cost())
	require.Equal(t, int64(13), got.Cost())
}

const network = `
directed = true

node "plant" { supply = 3 }
node "store" { supply = -3 }

edge "p-h" {
  from = "plant"
  to   = "hub"
  cost = 1
}

edge "h-s" {
  from     = "hub"
  to       = "store"
  cost     = 1
  capacity = 2
  directed = false
}

edge "p-s" {
  from   = "plant"
  to     = "store"
  cost   = 4
  length = 9
}
`

func TestReadHCL(t *testing.T) {
	g, err := netfile.ReadHCL([]byte(network), "network.hcl")
	require.NoError(t, err)
	require.Equal(t, []string{"hub", "plant", "store"}, g.Vertices())

	hs, err := g.Edge("h-s")
	require.NoError(t, err)
	require.False(t, hs.Directed)
	require.EqualValues(t, 2, hs.Attrs[netfile.AttrCapacity])
	ps, err := g.Edge("p-s")
	require.NoError(t, err)
	require.True(t, ps.Directed)
	require.EqualValues(t, 9, ps.Attrs[netfile.AttrLength])

	eng := solve(t, g)
	require.Equal(t, simplex.Optimal, eng.Status())
	require.Equal(t, int64(2*2+4), eng.Cost())
}

func TestReadHCLErrors(t *testing.T) {
	_, err := netfile.ReadHCL([]byte(`node "a" {`), "broken.hcl")
	require.Error(t, err)

	_, err = netfile.ReadHCL([]byte(`edge "x" { from = "a" }`), "missing.hcl")
	require.Error(t, err)

	_, err = netfile.ReadHCL([]byte(`
node "a" {}
node "a" {}
edge "x" {
  from = "a"
  to   = "b"
}
edge "x" {
  from = "b"
  to   = "a"
}
`), "dup.hcl")
	require.Error(t, err)
	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	require.ErrorIs(t, errs[0], netfile.ErrDuplicate)
	require.ErrorIs(t, errs[1], netfile.ErrDuplicate)
}

func TestWriteHCLRoundTrip(t *testing.T) {
	g, err := netfile.ReadHCL([]byte(network), "network.hcl")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, netfile.WriteHCL(&buf, g))
	back, err := netfile.ReadHCL(buf.Bytes(), "again.hcl")
	require.NoError(t, err, buf.String())

	require.Equal(t, g.Vertices(), back.Vertices())
	require.Equal(t, len(g.Edges()), len(back.Edges()))
	for _, e := range g.Edges() {
		b, err := back.Edge(e.ID)
		require.NoError(t, err)
		require.Equal(t, e.From, b.From)
		require.Equal(t, e.To, b.To)
		require.Equal(t, e.Directed, b.Directed)
		for _, key := range []string{netfile.AttrCost, netfile.AttrCapacity, netfile.AttrLength} {
			want, okW := core.Int64Attr(e.Attrs, key)
			got, okG := core.Int64Attr(b.Attrs, key)
			require.Equal(t, okW, okG, "%s %s", e.ID, key)
			require.Equal(t, want, got, "%s %s", e.ID, key)
		}
	}
	require.Equal(t, solve(t, g).Cost(), solve(t, back).Cost())
}

const script = `# grow the network
an plant 2
an store -2
ae ps plant store d 5
compute
ae ph plant hub d 1   # cheaper detour
ae hs hub store u 1 1
compute
se ps cost 6
re hs capacity
sn plant label depot
compute
de ph
rn plant label
dn hub
compute
`

func TestReadScript(t *testing.T) {
	cmds, err := netfile.ReadScript(strings.NewReader(script))
	require.NoError(t, err)
	require.Len(t, cmds, 15)

	require.Equal(t, netfile.Command{
		Line: 2, Op: netfile.OpAddNode, ID: "plant",
		Attrs: map[string]interface{}{netfile.AttrSupply: int64(2)},
	}, cmds[0])
	require.Equal(t, netfile.OpAddEdge, cmds[4].Op)
	require.Equal(t, 6, cmds[4].Line)
	require.True(t, *cmds[4].Directed)
	require.Equal(t, map[string]interface{}{netfile.AttrCost: int64(1)}, cmds[4].Attrs)
	require.False(t, *cmds[5].Directed)
	require.Equal(t, map[string]interface{}{netfile.AttrCost: int64(1), netfile.AttrCapacity: int64(1)}, cmds[5].Attrs)
	require.Equal(t, int64(6), cmds[7].Value)
	require.Equal(t, "depot", cmds[9].Value)
}

func TestReadScriptErrors(t *testing.T) {
	_, err := netfile.ReadScript(strings.NewReader("zap x\nan\nae e a b d x\nae e a b 1 2 3\ncompute now\n"))
	require.Error(t, err)
	errs := multierr.Errors(err)
	require.Len(t, errs, 5)
	require.ErrorIs(t, errs[0], netfile.ErrUnknownCommand)
	for _, e := range errs[1:] {
		require.ErrorIs(t, e, netfile.ErrSyntax)
	}
	require.Contains(t, errs[2].Error(), "line 3")
}

// TestReplayDrivesEngine replays the script against a subscribed engine and
// checks the optimum at every compute line.
func TestReplayDrivesEngine(t *testing.T) {
	cmds, err := netfile.ReadScript(strings.NewReader(script))
	require.NoError(t, err)

	g := core.NewGraph(core.WithDirected(true))
	eng := simplex.New()
	require.NoError(t, eng.Init(g))
	cancel := g.Subscribe(func(ev core.Event) { require.NoError(t, eng.Apply(ev)) })
	defer cancel()

	costs := map[int]int64{}
	err = netfile.Replay(g, cmds, func(line int) error {
		_, err := eng.Compute()
		if err == nil {
			err = eng.Check()
		}
		costs[line] = eng.Cost()
		return err
	})
	require.NoError(t, err)
	// 2 units direct at 5; then 1 via the detour at 2 and 1 direct;
	// then both via the uncapacitated detour; then direct again at 6.
	require.Equal(t, map[int]int64{5: 10, 8: 7, 12: 4, 16: 12}, costs)
	require.Equal(t, simplex.Optimal, eng.Status())
}

func TestReplayStopsAtFailure(t *testing.T) {
	cmds, err := netfile.ReadScript(strings.NewReader("an a\nan a\nan b\n"))
	require.NoError(t, err)
	g := core.NewGraph()
	err = netfile.Replay(g, cmds, nil)
	require.ErrorIs(t, err, netfile.ErrDuplicate)
	require.Contains(t, err.Error(), "line 2")
	require.False(t, g.HasVertex("b"))

	cmds, err = netfile.ReadScript(strings.NewReader("de ghost\n"))
	require.NoError(t, err)
	require.ErrorIs(t, netfile.Replay(g, cmds, nil), core.ErrEdgeNotFound)
}
