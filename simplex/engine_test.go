package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlath-simplex/bigm"
	"github.com/katalvlaran/lvlath-simplex/core"
	"github.com/katalvlaran/lvlath-simplex/simplex"
)

type arcSpec struct {
	id, from, to string
	cost         int64
	capacity     int64 // negative: no attribute
}

// network builds a directed graph from supplies and arcs.
func network(t *testing.T, supplies map[string]int64, arcs []arcSpec) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	for id, s := range supplies {
		require.NoError(t, g.AddVertex(id, map[string]interface{}{"supply": s}))
	}
	for _, a := range arcs {
		opts := []core.EdgeOption{core.WithEdgeID(a.id), core.WithEdgeAttr("cost", a.cost)}
		if a.capacity >= 0 {
			opts = append(opts, core.WithEdgeAttr("capacity", a.capacity))
		}
		_, err := g.AddEdge(a.from, a.to, opts...)
		require.NoError(t, err)
	}
	return g
}

// sixNodes has the unique optimum ac=5 cd=4 ce=1 de=3 bf=2, cost 32.
func sixNodes(t *testing.T) *core.Graph {
	return network(t,
		map[string]int64{"A": 5, "B": 2, "C": 0, "D": -1, "E": -4, "F": -2},
		[]arcSpec{
			{"ab", "A", "B", 3, -1},
			{"ac", "A", "C", 1, -1},
			{"bc", "B", "C", 1, -1},
			{"bf", "B", "F", 6, -1},
			{"cd", "C", "D", 2, -1},
			{"ce", "C", "E", 4, 5},
			{"de", "D", "E", 1, 3},
		})
}

// EngineSuite runs the solver on small hand-checked networks.
type EngineSuite struct {
	suite.Suite
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) solve(g *core.Graph, opts ...simplex.Option) *simplex.Engine {
	eng := simplex.New(opts...)
	s.Require().NoError(eng.Init(g))
	s.Require().Equal(simplex.Undefined, eng.Status())
	_, err := eng.Compute()
	s.Require().NoError(err)
	s.Require().NoError(eng.Check())
	return eng
}

func (s *EngineSuite) requireFlows(eng *simplex.Engine, want map[string]int64) {
	for id, f := range want {
		got, err := eng.Flow(id, false)
		s.Require().NoError(err)
		s.Require().Equal(f, got, "flow on %s", id)
	}
}

func (s *EngineSuite) TestFixedInstance() {
	for _, p := range []simplex.Pricing{simplex.MostNegative, simplex.FirstNegative} {
		s.Run(p.String(), func() {
			eng := s.solve(sixNodes(s.T()), simplex.WithPricing(p))
			s.Require().Equal(simplex.Optimal, eng.Status())
			s.Require().Equal(int64(32), eng.Cost())
			s.Require().Zero(eng.Infeasibility())
			s.Require().Zero(eng.NetworkBalance())
			s.requireFlows(eng, map[string]int64{
				"ab": 0, "ac": 5, "bc": 0, "bf": 2, "cd": 4, "ce": 1, "de": 3,
			})
			s.Require().Equal(bigm.Of(32), eng.Objective())
		})
	}
}

func (s *EngineSuite) TestComplementarySlackness() {
	eng := s.solve(sixNodes(s.T()))
	for _, id := range eng.EdgeIDs() {
		st, err := eng.ArcStatus(id, false)
		s.Require().NoError(err)
		f, _ := eng.Flow(id, false)
		if st == simplex.NonbasicLower {
			s.Require().Zero(f, id)
		}
	}
	// A basic arc with zero reduced cost: ac carries flow, so it is basic.
	st, err := eng.ArcStatus("ac", false)
	s.Require().NoError(err)
	s.Require().Equal(simplex.Basic, st)
	pa, _ := eng.Potential("A")
	pc, _ := eng.Potential("C")
	s.Require().Equal(bigm.Of(1), pa.Minus(pc))
}

func (s *EngineSuite) TestUndirectedUsesReverseArc() {
	g := core.NewGraph()
	s.Require().NoError(g.AddVertex("A", map[string]interface{}{"supply": -2}))
	s.Require().NoError(g.AddVertex("B", map[string]interface{}{"supply": 2}))
	_, err := g.AddEdge("A", "B", core.WithEdgeID("ab"), core.WithEdgeAttr("cost", 1))
	s.Require().NoError(err)

	eng := s.solve(g)
	s.Require().Equal(simplex.Optimal, eng.Status())
	s.Require().Equal(int64(2), eng.Cost())

	fwd, err := eng.Flow("ab", false)
	s.Require().NoError(err)
	rev, err := eng.Flow("ab", true)
	s.Require().NoError(err)
	s.Require().Zero(fwd)
	s.Require().Equal(int64(2), rev)

	directed, err := eng.Directed("ab")
	s.Require().NoError(err)
	s.Require().False(directed)
}

func (s *EngineSuite) TestInfeasible() {
	g := network(s.T(), map[string]int64{"A": 3, "B": -3}, nil)
	eng := s.solve(g)
	s.Require().Equal(simplex.Infeasible, eng.Status())
	s.Require().Equal(int64(6), eng.Infeasibility())
	x, err := eng.NodeInfeasibility("A")
	s.Require().NoError(err)
	s.Require().Equal(int64(3), x)

	s.Require().NoError(eng.AddEdge("ab", "A", "B", true, 1, 2))
	s.Require().Equal(simplex.Undefined, eng.Status())
	st, err := eng.Compute()
	s.Require().NoError(err)
	s.Require().Equal(simplex.Infeasible, st)
	s.Require().Equal(int64(2), eng.Infeasibility())
	s.Require().Equal(int64(2), eng.Cost())
	s.Require().NoError(eng.Check())

	s.Require().NoError(eng.SetCapacity("ab", simplex.Unlimited))
	st, err = eng.Compute()
	s.Require().NoError(err)
	s.Require().Equal(simplex.Optimal, st)
	s.Require().Equal(int64(3), eng.Cost())
	s.Require().NoError(eng.Check())
}

func (s *EngineSuite) TestUnbalancedSupplies() {
	g := network(s.T(), map[string]int64{"A": 4, "B": -1}, []arcSpec{{"ab", "A", "B", 1, -1}})
	eng := s.solve(g)
	s.Require().Equal(int64(3), eng.NetworkBalance())
	s.Require().Equal(simplex.Infeasible, eng.Status())
	s.Require().Equal(int64(3), eng.Infeasibility())
	s.Require().Equal(int64(1), eng.Cost())
}

func (s *EngineSuite) TestUnbounded() {
	g := network(s.T(), map[string]int64{"A": 0, "B": 0}, []arcSpec{
		{"ab", "A", "B", -1, -1},
		{"ba", "B", "A", -1, -1},
	})
	eng := s.solve(g)
	s.Require().Equal(simplex.Unbounded, eng.Status())

	s.Require().NoError(eng.SetCapacity("ab", 5))
	s.Require().Equal(simplex.Undefined, eng.Status())
	st, err := eng.Compute()
	s.Require().NoError(err)
	s.Require().Equal(simplex.Optimal, st)
	s.Require().Equal(int64(-10), eng.Cost())
	s.Require().NoError(eng.Check())
}

func (s *EngineSuite) TestDegenerateZeroCosts() {
	g := network(s.T(), map[string]int64{"A": 2, "B": 0, "C": -2}, []arcSpec{
		{"ab", "A", "B", 0, -1},
		{"bc", "B", "C", 0, -1},
		{"ca", "C", "A", 0, -1},
		{"ac", "A", "C", 0, 1},
	})
	eng := s.solve(g)
	s.Require().Equal(simplex.Optimal, eng.Status())
	s.Require().Zero(eng.Cost())
}

func (s *EngineSuite) TestDefaultCostAndCustomKeys() {
	g := core.NewGraph(core.WithDirected(true))
	s.Require().NoError(g.AddVertex("s", map[string]interface{}{"b": 2}))
	s.Require().NoError(g.AddVertex("t", map[string]interface{}{"b": "-2"}))
	_, err := g.AddEdge("s", "t", core.WithEdgeID("st"), core.WithEdgeAttr("w", "oops"))
	s.Require().NoError(err)

	eng := s.solve(g, simplex.WithSupplyAttr("b"), simplex.WithCostAttr("w"), simplex.WithDefaultCost(7))
	s.Require().Equal(simplex.Optimal, eng.Status())
	s.Require().Equal(int64(14), eng.Cost())
}

func (s *EngineSuite) TestSupplyFunc() {
	g := network(s.T(), map[string]int64{"A": 0, "B": 0}, []arcSpec{{"ab", "A", "B", 2, -1}})
	eng := s.solve(g, simplex.WithSupplyFunc(func(id string, _ map[string]interface{}) int64 {
		if id == "A" {
			return 1
		}
		return -1
	}))
	s.Require().Equal(int64(2), eng.Cost())
}

func (s *EngineSuite) TestErrors() {
	eng := simplex.New()
	_, err := eng.Compute()
	s.Require().ErrorIs(err, simplex.ErrNotInitialized)
	s.Require().ErrorIs(eng.AddNode("x", 0), simplex.ErrNotInitialized)
	_, err = eng.Flow("ab", false)
	s.Require().ErrorIs(err, simplex.ErrNotInitialized)

	s.Require().NoError(eng.Init(sixNodes(s.T())))
	s.Require().True(eng.Initialized())
	s.Require().ErrorIs(eng.Init(sixNodes(s.T())), simplex.ErrAlreadyInitialized)

	_, err = eng.Flow("zz", false)
	s.Require().ErrorIs(err, simplex.ErrEdgeNotFound)
	_, err = eng.Flow("ab", true)
	s.Require().ErrorIs(err, simplex.ErrArcNotFound)
	_, err = eng.Potential("Q")
	s.Require().ErrorIs(err, simplex.ErrNodeNotFound)
	s.Require().ErrorIs(eng.AddNode("A", 0), simplex.ErrNodeExists)
	s.Require().ErrorIs(eng.AddNode("", 0), simplex.ErrEmptyID)
	s.Require().ErrorIs(eng.AddEdge("ab", "A", "B", true, 1, 1), simplex.ErrEdgeExists)
	s.Require().ErrorIs(eng.AddEdge("xy", "A", "Q", true, 1, 1), simplex.ErrNodeNotFound)
	s.Require().ErrorIs(eng.AddEdge("~xy", "A", "B", true, 1, 1), simplex.ErrReservedID)
	s.Require().ErrorIs(eng.SetCost("zz", 1), simplex.ErrEdgeNotFound)
	s.Require().ErrorIs(eng.SetSupply("Q", 1), simplex.ErrNodeNotFound)

	eng.Terminate()
	s.Require().False(eng.Initialized())
	s.Require().ErrorIs(eng.Check(), simplex.ErrNotInitialized)
	s.Require().NoError(eng.Init(sixNodes(s.T())))
}

func (s *EngineSuite) TestReservedPrefixAtInit() {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("A", "B", core.WithEdgeID("~ab"))
	s.Require().NoError(err)

	eng := simplex.New()
	s.Require().ErrorIs(eng.Init(g), simplex.ErrReservedID)
	s.Require().False(eng.Initialized())
}

func (s *EngineSuite) TestTreeQueries() {
	eng := s.solve(sixNodes(s.T()))
	s.Require().Equal([]string{"A", "B", "C", "D", "E", "F"}, eng.NodeIDs())
	s.Require().True(eng.HasNode("C"))
	s.Require().False(eng.HasNode(""))

	for _, id := range eng.NodeIDs() {
		p, err := eng.Parent(id)
		s.Require().NoError(err)
		edge, _, err := eng.EdgeFromParent(id)
		s.Require().NoError(err)
		if p == "" {
			s.Require().Empty(edge, "node %s hangs from the root through its artificial arc", id)
		} else {
			s.Require().NotEmpty(edge)
		}
	}

	sup, err := eng.Supply("E")
	s.Require().NoError(err)
	s.Require().Equal(int64(-4), sup)

	st := eng.Stats()
	s.Require().Equal(6, st.Nodes)
	s.Require().Equal(7, st.Arcs)
	s.Require().Positive(st.Pivots)
}

func (s *EngineSuite) TestComputeIsIdempotent() {
	eng := s.solve(sixNodes(s.T()))
	pivots := eng.Stats().Pivots
	st, err := eng.Compute()
	s.Require().NoError(err)
	s.Require().Equal(simplex.Optimal, st)
	s.Require().Equal(pivots, eng.Stats().Pivots)
}

func (s *EngineSuite) TestWarmStart() {
	g := network(s.T(), map[string]int64{"A": 2, "B": 0, "C": -2}, []arcSpec{
		{"ab", "A", "B", 1, -1},
		{"bc", "B", "C", 1, -1},
		{"ac", "A", "C", 5, -1},
	})
	good := func(*core.Graph) (map[string]simplex.TreeLink, error) {
		return map[string]simplex.TreeLink{
			"B": {Parent: "A", EdgeID: "ab"},
			"C": {Parent: "B", EdgeID: "bc"},
		}, nil
	}
	eng := s.solve(g, simplex.WithWarmStart(good))
	s.Require().Equal(simplex.Optimal, eng.Status())
	s.Require().Equal(int64(4), eng.Cost())
	s.Require().Zero(eng.Stats().Pivots)
	p, _ := eng.Parent("C")
	s.Require().Equal("B", p)

	bad := func(*core.Graph) (map[string]simplex.TreeLink, error) {
		return map[string]simplex.TreeLink{
			"B": {Parent: "C", EdgeID: "ab"},
		}, nil
	}
	eng = s.solve(g, simplex.WithWarmStart(bad))
	s.Require().Equal(simplex.Optimal, eng.Status())
	s.Require().Equal(int64(4), eng.Cost())

	cyclic := func(*core.Graph) (map[string]simplex.TreeLink, error) {
		return map[string]simplex.TreeLink{
			"A": {Parent: "B", EdgeID: "ab"},
			"B": {Parent: "A", EdgeID: "ab"},
		}, nil
	}
	eng = s.solve(g, simplex.WithWarmStart(cyclic))
	s.Require().Equal(int64(4), eng.Cost())
}

func (s *EngineSuite) TestWarmStartRespectsCapacity() {
	g := network(s.T(), map[string]int64{"A": 2, "B": -2}, []arcSpec{
		{"ab", "A", "B", 1, 1},
	})
	over := func(*core.Graph) (map[string]simplex.TreeLink, error) {
		return map[string]simplex.TreeLink{"B": {Parent: "A", EdgeID: "ab"}}, nil
	}
	eng := s.solve(g, simplex.WithWarmStart(over))
	s.Require().Equal(simplex.Infeasible, eng.Status())
	s.Require().Equal(int64(2), eng.Infeasibility())
}

func (s *EngineSuite) TestHooks() {
	var statuses []simplex.SolutionStatus
	var entered []string
	hooks := simplex.Hooks{
		OnStatus:          func(st simplex.SolutionStatus) { statuses = append(statuses, st) },
		OnArtificialEnter: func(id string) { entered = append(entered, id) },
	}
	g := network(s.T(), map[string]int64{"A": 1, "B": -1}, []arcSpec{{"ab", "A", "B", 1, -1}})
	eng := s.solve(g, simplex.WithHooks(hooks))
	s.Require().Equal([]simplex.SolutionStatus{simplex.Optimal}, statuses)

	s.Require().NoError(eng.SetSupply("A", 2))
	s.Require().NoError(eng.SetSupply("B", -2))
	s.Require().Len(entered, 1)
	s.Require().Contains([]string{"A", "B"}, entered[0])
	s.Require().NoError(eng.Check())

	st, err := eng.Compute()
	s.Require().NoError(err)
	s.Require().Equal(simplex.Optimal, st)
	s.Require().Equal(int64(2), eng.Cost())
	s.Require().Equal([]simplex.SolutionStatus{simplex.Optimal, simplex.Undefined, simplex.Optimal}, statuses)
}

func TestStringers(t *testing.T) {
	require.Equal(t, "OPTIMAL", simplex.Optimal.String())
	require.Equal(t, "UNBOUNDED", simplex.Unbounded.String())
	require.Equal(t, "NONBASIC_UPPER", simplex.NonbasicUpper.String())
	require.Equal(t, "first-negative", simplex.FirstNegative.String())
}
