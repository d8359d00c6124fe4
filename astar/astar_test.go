package astar_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/estrela/astar"
	"github.com/katalvlaran/estrela/core"
	"github.com/katalvlaran/estrela/dataset"
	"github.com/katalvlaran/estrela/dijkstra"
)

// loadGraph builds the bundled dataset called name.
func loadGraph(t testing.TB, name string) *core.Graph {
	t.Helper()
	doc, err := dataset.Embedded(name)
	require.NoError(t, err)
	g, err := doc.Graph()
	require.NoError(t, err)

	return g
}

func find(t testing.TB, g *core.Graph, start, goal string, opts ...astar.Option[string]) (astar.Result[string], error) {
	t.Helper()

	return astar.FindPath(context.Background(), start, goal, g.Successors, g.Heuristic, g.Cost, opts...)
}

func TestFindPath_SmallPrefersCheaperDetour(t *testing.T) {
	g := loadGraph(t, "small")

	var relaxed []string
	res, err := find(t, g, "A", "F", astar.WithOnRelax(func(s string, g float64) {
		relaxed = append(relaxed, fmt.Sprintf("%s=%g", s, g))
	}))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []string{"A", "B", "E", "F"}, res.Path)
	assert.Equal(t, 3.0, res.Cost)

	// A, C, B and E are closed; F is reached via C first, then relaxed via E.
	assert.Equal(t, 4, res.Expanded)
	assert.Equal(t, 6, res.Generated)
	assert.Equal(t, 1, res.Relaxed)
	assert.Equal(t, []string{"F=3"}, relaxed)
}

func TestFindPath_Romania(t *testing.T) {
	g := loadGraph(t, "romania")

	res, err := find(t, g, "Arad", "Bucharest")
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []string{"Arad", "Sibiu", "Rimnicu Vilcea", "Pitesti", "Bucharest"}, res.Path)
	assert.Equal(t, 418.0, res.Cost)
}

func TestFindPath_ZeroHeuristicStillOptimal(t *testing.T) {
	g := loadGraph(t, "romania")
	ctx := context.Background()

	informed, err := find(t, g, "Arad", "Bucharest")
	require.NoError(t, err)
	blind, err := astar.FindPath(ctx, "Arad", "Bucharest", g.Successors, astar.Zero[string](), g.Cost)
	require.NoError(t, err)

	require.True(t, blind.Found)
	assert.Equal(t, informed.Cost, blind.Cost)
	assert.GreaterOrEqual(t, blind.Expanded, informed.Expanded)
}

func TestFindPath_Reflexive(t *testing.T) {
	g := loadGraph(t, "romania")
	for _, s := range []string{"Arad", "Bucharest", "Nowhere"} {
		res, err := find(t, g, s, s)
		require.NoError(t, err)
		assert.True(t, res.Found, s)
		assert.Equal(t, []string{s}, res.Path)
		assert.Zero(t, res.Cost)
		assert.Zero(t, res.Expanded)
	}
}

func TestFindPath_NoPath(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "A"}, {"C", "D"}, {"D", "C"}} {
		_, err := g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}

	res, err := find(t, g, "A", "D")
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
	assert.Equal(t, 2, res.Expanded)

	// Unknown start: a dead end, not an error.
	res, err = find(t, g, "Nowhere", "A")
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 1, res.Expanded)
}

func TestFindPath_AbsentEdgesAreSkipped(t *testing.T) {
	ctx := context.Background()
	successors := astar.Successors(func(s string) []string {
		if s == "A" {
			return []string{"B", "C"}
		}
		return nil
	})
	cost := astar.Costs(func(_, to string) float64 {
		if to == "B" {
			return math.Inf(1)
		}
		return math.NaN()
	})

	res, err := astar.FindPath(ctx, "A", "B", successors, astar.Zero[string](), cost)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 1, res.Generated)
}

func TestFindPath_NaNHeuristicCountsAsZero(t *testing.T) {
	g := loadGraph(t, "small")
	nan := astar.Estimates(func(string) float64 { return math.NaN() })

	res, err := astar.FindPath(context.Background(), "A", "F", g.Successors, nan, g.Cost)
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Cost)
}

func TestFindPath_Deterministic(t *testing.T) {
	g := loadGraph(t, "romania")
	first, err := find(t, g, "Timisoara", "Neamt")
	require.NoError(t, err)
	require.True(t, first.Found)

	for i := 0; i < 20; i++ {
		again, err := find(t, g, "Timisoara", "Neamt")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestFindPath_MonotonicClosing(t *testing.T) {
	g := loadGraph(t, "romania")
	for _, goal := range g.Vertices() {
		closed := make(map[string]bool)
		res, err := find(t, g, "Arad", goal, astar.WithOnExpand(func(s string, _ float64) error {
			if closed[s] {
				return fmt.Errorf("%s closed twice", s)
			}
			closed[s] = true
			return nil
		}))
		require.NoError(t, err, goal)
		assert.Len(t, closed, res.Expanded, goal)
		assert.False(t, closed[goal], "goal %s must not be expanded", goal)
	}
}

// TestFindPath_MatchesDijkstra compares uniform-cost and informed A* against
// two independent shortest-path implementations on random graphs.
func TestFindPath_MatchesDijkstra(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 25; round++ {
		const n = 30
		g := core.NewGraph()
		oracle := simple.NewWeightedDirectedGraph(0, math.Inf(1))
		for i := 0; i < n; i++ {
			require.NoError(t, g.AddVertex(vid(i)))
			oracle.AddNode(simple.Node(i))
		}
		for k := 0; k < 3*n; k++ {
			u, v := rng.Intn(n), rng.Intn(n)
			if u == v || g.HasEdge(vid(u), vid(v)) {
				continue
			}
			w := float64(rng.Intn(20) + 1)
			_, err := g.AddEdge(vid(u), vid(v), w)
			require.NoError(t, err)
			oracle.SetWeightedEdge(oracle.NewWeightedEdge(simple.Node(u), simple.Node(v), w))
		}

		goal := rng.Intn(n)
		// Half of the exact cost-to-go is admissible.
		toGoal, _, err := dijkstra.Dijkstra(g.Reverse(), dijkstra.Source(vid(goal)))
		require.NoError(t, err)
		half := astar.Estimates(func(s string) float64 {
			if d := toGoal[s]; !math.IsInf(d, 1) {
				return d / 2
			}
			return 0
		})

		from := path.DijkstraFrom(simple.Node(0), oracle)
		_, want := from.To(int64(goal))

		for _, h := range []astar.HeuristicFunc[string]{astar.Zero[string](), half} {
			res, err := astar.FindPath(ctx, vid(0), vid(goal), g.Successors, h, g.Cost)
			require.NoError(t, err)
			if math.IsInf(want, 1) {
				assert.False(t, res.Found, "round %d", round)
				continue
			}
			require.True(t, res.Found, "round %d", round)
			assert.Equal(t, want, res.Cost, "round %d", round)
			assert.Equal(t, want, pathCost(t, g, res.Path), "round %d", round)
		}
	}
}

func vid(i int) string { return fmt.Sprintf("n%d", i) }

func pathCost(t *testing.T, g *core.Graph, p []string) float64 {
	t.Helper()
	var sum float64
	for i := 1; i < len(p); i++ {
		w, ok := g.Weight(p[i-1], p[i])
		require.True(t, ok, "%s→%s", p[i-1], p[i])
		sum += w
	}

	return sum
}

func TestFindPath_CollaboratorErrors(t *testing.T) {
	g := loadGraph(t, "small")
	ctx := context.Background()
	boom := errors.New("store unavailable")

	failingSuccessors := func(ctx context.Context, s string) ([]string, error) {
		if s == "B" {
			return nil, boom
		}
		return g.Successors(ctx, s)
	}
	failingCost := func(ctx context.Context, from, to string) (float64, error) {
		if to == "D" {
			return 0, boom
		}
		return g.Cost(ctx, from, to)
	}
	failingHeuristic := func(ctx context.Context, s string) (float64, error) {
		if s == "C" {
			return 0, boom
		}
		return g.Heuristic(ctx, s)
	}

	cases := []struct {
		name  string
		succ  astar.SuccessorFunc[string]
		cost  astar.CostFunc[string]
		heur  astar.HeuristicFunc[string]
		op    string
		state string
	}{
		{"successors", failingSuccessors, g.Cost, g.Heuristic, astar.OpSuccessors, "B"},
		{"cost", g.Successors, failingCost, g.Heuristic, astar.OpCost, "B"},
		{"heuristic", g.Successors, g.Cost, failingHeuristic, astar.OpHeuristic, "C"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := astar.FindPath(ctx, "A", "F", tc.succ, tc.heur, tc.cost)
			require.Error(t, err)
			assert.False(t, res.Found)
			assert.ErrorIs(t, err, astar.ErrCollaborator)
			assert.ErrorIs(t, err, boom)

			var ce *astar.CollaboratorError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tc.op, ce.Op)
			assert.Equal(t, tc.state, ce.State)
		})
	}

	// A failing heuristic on the start state aborts before any expansion.
	res, err := astar.FindPath(ctx, "C", "F", g.Successors, failingHeuristic, g.Cost)
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, res.Generated)
}

func TestFindPath_Budget(t *testing.T) {
	g := loadGraph(t, "romania")

	res, err := find(t, g, "Arad", "Bucharest", astar.WithMaxExpansions[string](2))
	assert.ErrorIs(t, err, astar.ErrBudgetExhausted)
	assert.False(t, res.Found)
	assert.Equal(t, 2, res.Expanded)

	// The goal test precedes the budget check.
	res, err = find(t, g, "Arad", "Arad", astar.WithMaxExpansions[string](1))
	require.NoError(t, err)
	assert.True(t, res.Found)

	res, err = find(t, g, "Arad", "Bucharest", astar.WithMaxExpansions[string](100))
	require.NoError(t, err)
	assert.Equal(t, 418.0, res.Cost)

	assert.PanicsWithValue(t, astar.ErrBadMaxExpansions.Error(), func() {
		astar.WithMaxExpansions[string](0)
	})
}

func TestFindPath_Cancellation(t *testing.T) {
	g := loadGraph(t, "romania")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := astar.FindPath(ctx, "Arad", "Arad", g.Successors, g.Heuristic, g.Cost)
	assert.ErrorIs(t, err, context.Canceled)
	assert.EqualError(t, err, "astar: search aborted: context canceled")

	ctx, cancel = context.WithCancel(context.Background())
	defer cancel()
	res, err := astar.FindPath(ctx, "Arad", "Bucharest", g.Successors, g.Heuristic, g.Cost,
		astar.WithOnExpand(func(string, float64) error {
			cancel()
			return nil
		}))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, res.Expanded)
}

func TestFindPath_OnExpandAborts(t *testing.T) {
	g := loadGraph(t, "small")
	stop := errors.New("stop")
	_, err := find(t, g, "A", "F", astar.WithOnExpand(func(s string, _ float64) error {
		if s == "C" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.NotErrorIs(t, err, astar.ErrCollaborator)
}

func TestFindPath_NilCollaborator(t *testing.T) {
	g := loadGraph(t, "small")
	ctx := context.Background()

	_, err := astar.FindPath(ctx, "A", "F", nil, g.Heuristic, g.Cost)
	assert.ErrorIs(t, err, astar.ErrNilCollaborator)
	_, err = astar.FindPath(ctx, "A", "F", g.Successors, nil, g.Cost)
	assert.ErrorIs(t, err, astar.ErrNilCollaborator)
	_, err = astar.FindPath[string](ctx, "A", "F", g.Successors, g.Heuristic, nil)
	assert.ErrorIs(t, err, astar.ErrNilCollaborator)
}

// TestFindPath_GridStates runs the engine over a non-string state type.
func TestFindPath_GridStates(t *testing.T) {
	type cell struct{ x, y int }
	const size = 8
	wall := map[cell]bool{{3, 0}: true, {3, 1}: true, {3, 2}: true, {3, 3}: true, {3, 4}: true}

	successors := astar.Successors(func(c cell) []cell {
		var out []cell
		for _, d := range []cell{{1, 0}, {0, 1}, {-1, 0}, {0, -1}} {
			n := cell{c.x + d.x, c.y + d.y}
			if n.x < 0 || n.y < 0 || n.x >= size || n.y >= size || wall[n] {
				continue
			}
			out = append(out, n)
		}
		return out
	})
	goal := cell{6, 0}
	manhattan := astar.Estimates(func(c cell) float64 {
		return math.Abs(float64(goal.x-c.x)) + math.Abs(float64(goal.y-c.y))
	})
	unit := astar.Costs(func(cell, cell) float64 { return 1 })

	res, err := astar.FindPath(context.Background(), cell{0, 0}, goal, successors, manhattan, unit)
	require.NoError(t, err)
	require.True(t, res.Found)
	// Around the wall: up to y=5, across, and back down.
	assert.Equal(t, 16.0, res.Cost)
	assert.Len(t, res.Path, 17)
}
