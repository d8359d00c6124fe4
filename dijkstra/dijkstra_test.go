package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/estrela/core"
	"github.com/katalvlaran/estrela/dijkstra"
)

// buildDirected adds every edge of es to a fresh directed graph.
func buildDirected(t *testing.T, es ...[3]any) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range es {
		_, err := g.AddEdge(e[0].(string), e[1].(string), float64(e[2].(int)))
		require.NoError(t, err)
	}

	return g
}

func TestDijkstra_Validation(t *testing.T) {
	g := core.NewGraph()

	_, _, err := dijkstra.Dijkstra(g)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, _, err = dijkstra.Dijkstra(nil, dijkstra.Source("X"))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("X"))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstra_MediumDirectedGraph(t *testing.T) {
	// A→B(2), A→C(1), C→B(1), B→D(3), C→D(5)
	g := buildDirected(t,
		[3]any{"A", "B", 2}, [3]any{"A", "C", 1}, [3]any{"C", "B", 1},
		[3]any{"B", "D", 3}, [3]any{"C", "D", 5},
	)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{"A": 0, "B": 2, "C": 1, "D": 5}, dist)
	assert.Equal(t, "B", prev["D"])
	// A→B and A→C→B tie at 2; only a strict improvement replaces a parent.
	assert.Equal(t, "A", prev["B"])
	assert.Equal(t, []string{"A", "B", "D"}, dijkstra.PathTo(dist, prev, "A", "D"))
}

func TestDijkstra_NoReturnPath(t *testing.T) {
	g := buildDirected(t, [3]any{"A", "B", 1})
	_, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Nil(t, prev)
}

func TestDijkstra_UnreachableIsInf(t *testing.T) {
	g := buildDirected(t, [3]any{"A", "B", 1}, [3]any{"C", "D", 1})
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)

	assert.True(t, math.IsInf(dist["D"], 1))
	assert.Nil(t, dijkstra.PathTo(dist, prev, "A", "D"))
	assert.Equal(t, []string{"A"}, dijkstra.PathTo(dist, prev, "A", "A"))
}

func TestDijkstra_MaxDistanceLimits(t *testing.T) {
	g := buildDirected(t, [3]any{"A", "B", 1}, [3]any{"B", "C", 1}, [3]any{"C", "D", 1})
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(1))
	require.NoError(t, err)

	assert.Equal(t, 0.0, dist["A"])
	assert.Equal(t, 1.0, dist["B"])
	assert.True(t, math.IsInf(dist["C"], 1))
	assert.True(t, math.IsInf(dist["D"], 1))
}

func TestDijkstra_OptionPanics(t *testing.T) {
	g := buildDirected(t, [3]any{"A", "B", 1})
	assert.Panics(t, func() {
		_, _, _ = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(-1))
	})
}

func TestDijkstra_SelfLoopZeroWeight(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, err := g.AddEdge("X", "X", 0)
	require.NoError(t, err)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("X"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist["X"])
	assert.Equal(t, "", prev["X"])
}
