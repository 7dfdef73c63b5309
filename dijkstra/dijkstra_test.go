// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// They cover validation order, directed vs. undirected traversal, parallel
// edges, MaxDistance, custom cost functions and a randomized comparison with
// gonum's Dijkstra.
package dijkstra_test

import (
	"errors"
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvlath-simplex/core"
	"github.com/katalvlaran/lvlath-simplex/dijkstra"
)

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_EmptySource(t *testing.T) {
	_, err := dijkstra.Dijkstra(core.NewGraph())
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)
}

func TestDijkstra_NilGraphWithoutSource(t *testing.T) {
	// ErrEmptySource has priority over ErrNilGraph.
	_, err := dijkstra.Dijkstra(nil)
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)
}

func TestDijkstra_NilGraphWithSource(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil, dijkstra.Source("X"))
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	_, err := dijkstra.Dijkstra(g, dijkstra.Source("Z"))
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstra_NegativeWeight(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("A", "B", core.WithEdgeAttr("cost", -2))
	require.NoError(t, err)

	_, err = dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.True(t, errors.Is(err, dijkstra.ErrNegativeWeight), "got %v", err)
}

func TestDijkstra_NegativeMaxDistancePanics(t *testing.T) {
	// The option only panics once it is applied.
	require.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		dijkstra.WithMaxDistance(-1)(&dijkstra.Options{})
	})

	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddVertex("A"))
	require.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		_, _ = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(-1))
	})
}

// ------------------------------------------------------------------------
// 2. Behavior
// ------------------------------------------------------------------------

func TestDijkstra_DirectedTree(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	add := func(id, from, to string, w int) {
		_, err := g.AddEdge(from, to, core.WithEdgeID(id), core.WithEdgeAttr("cost", w))
		require.NoError(t, err)
	}
	add("ab", "A", "B", 4)
	add("ac", "A", "C", 1)
	add("cb", "C", "B", 2)
	add("cb2", "C", "B", 1) // parallel, cheaper
	add("bd", "B", "D", 5)
	add("da", "D", "A", 1)
	require.NoError(t, g.AddVertex("Z"))

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)

	require.Equal(t, map[string]int64{"A": 0, "B": 2, "C": 1, "D": 7, "Z": dijkstra.Infinity}, res.Dist)
	require.Equal(t, "cb2", res.PrevEdge["B"])
	require.Equal(t, "C", res.Prev["B"])
	require.Equal(t, "", res.PrevEdge["A"])
	require.Equal(t, "", res.Prev["Z"])
	require.Equal(t, []string{"A", "C", "B", "D"}, res.PathTo("D"))
	require.Nil(t, res.PathTo("Z"))
	require.False(t, res.Reachable("Z"))
}

func TestDijkstra_UndirectedBothWays(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("B", "A", core.WithEdgeID("ba"), core.WithEdgeAttr("cost", 3))
	require.NoError(t, err)
	_, err = g.AddEdge("C", "B", core.WithEdgeID("cb"), core.WithEdgeAttr("cost", 2))
	require.NoError(t, err)

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	require.Equal(t, int64(5), res.Dist["C"])
	require.Equal(t, "ba", res.PrevEdge["B"])
	require.Equal(t, "cb", res.PrevEdge["C"])
}

func TestDijkstra_DefaultCostIsOne(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	require.Equal(t, int64(2), res.Dist["C"])
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", core.WithEdgeAttr("w", 2))
	_, _ = g.AddEdge("B", "C", core.WithEdgeAttr("w", 2))
	_, _ = g.AddEdge("C", "D", core.WithEdgeAttr("w", 2))

	res, err := dijkstra.Dijkstra(g,
		dijkstra.Source("A"),
		dijkstra.WithCostAttr("w", 1),
		dijkstra.WithMaxDistance(4),
	)
	require.NoError(t, err)
	require.Equal(t, int64(4), res.Dist["C"])
	require.Equal(t, dijkstra.Infinity, res.Dist["D"])
	require.Equal(t, "", res.PrevEdge["D"])
}

func TestDijkstra_ImpassableEdges(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", core.WithEdgeID("closed"), core.WithEdgeAttr("cap", 0))
	_, _ = g.AddEdge("A", "C", core.WithEdgeID("open"))
	_, _ = g.AddEdge("C", "B", core.WithEdgeID("detour"))

	res, err := dijkstra.Dijkstra(g,
		dijkstra.Source("A"),
		dijkstra.WithCost(func(e core.Edge) (int64, bool) {
			if c, ok := core.Int64Attr(e.Attrs, "cap"); ok && c == 0 {
				return 0, false
			}
			return 1, true
		}),
	)
	require.NoError(t, err)
	require.Equal(t, int64(2), res.Dist["B"])
	require.Equal(t, "detour", res.PrevEdge["B"])
}

func TestDijkstra_SelfLoopIgnored(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, err := g.AddEdge("A", "A", core.WithEdgeAttr("cost", 0))
	require.NoError(t, err)

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	require.Equal(t, map[string]int64{"A": 0}, res.Dist)
}

// ------------------------------------------------------------------------
// 3. Oracle comparison
// ------------------------------------------------------------------------

var posInf = math.Inf(1)

func TestDijkstra_MatchesGonum(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		n := 4 + rng.Intn(12)
		g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
		oracle := simple.NewWeightedDirectedGraph(0, 0)
		for i := 0; i < n; i++ {
			require.NoError(t, g.AddVertex(strconv.Itoa(i)))
			oracle.AddNode(simple.Node(i))
		}
		for k := 0; k < 3*n; k++ {
			u, v := rng.Intn(n), rng.Intn(n)
			if u == v {
				continue
			}
			w := rng.Intn(10)
			_, err := g.AddEdge(strconv.Itoa(u), strconv.Itoa(v), core.WithEdgeAttr("cost", w))
			require.NoError(t, err)
			// gonum keeps one weight per ordered pair: keep the cheapest.
			if cur, ok := oracle.Weight(int64(u), int64(v)); !ok || float64(w) < cur {
				oracle.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(u), T: simple.Node(v), W: float64(w)})
			}
		}

		res, err := dijkstra.Dijkstra(g, dijkstra.Source("0"))
		require.NoError(t, err)
		want := path.DijkstraFrom(simple.Node(0), oracle)
		for i := 0; i < n; i++ {
			_, w := want.To(int64(i))
			if w == posInf {
				require.False(t, res.Reachable(strconv.Itoa(i)), "seed %d node %d", seed, i)
				continue
			}
			require.Equal(t, int64(w), res.Dist[strconv.Itoa(i)], "seed %d node %d", seed, i)
		}
	}
}
