package audit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/estrela/audit"
	"github.com/katalvlaran/estrela/core"
	"github.com/katalvlaran/estrela/dataset"
)

func graphOf(t *testing.T, name string) *core.Graph {
	t.Helper()
	doc, err := dataset.Embedded(name)
	require.NoError(t, err)
	g, err := doc.Graph()
	require.NoError(t, err)
	return g
}

func TestCheck_Small(t *testing.T) {
	rep, err := audit.Check(graphOf(t, "small"), "F")
	require.NoError(t, err)

	assert.False(t, rep.Admissible())
	assert.False(t, rep.Consistent())
	assert.Equal(t, 5, rep.States)
	assert.Equal(t, 1, rep.Unreachable) // D has no way out
	assert.Equal(t, 6, rep.Edges)
	assert.Equal(t, []audit.Violation{
		{Kind: audit.Overestimate, State: "A", H: 7, Bound: 3},
		{Kind: audit.Overestimate, State: "B", H: 6, Bound: 2},
		{Kind: audit.Inconsistent, State: "A", Next: "C", H: 7, Bound: 6},
		{Kind: audit.Inconsistent, State: "B", Next: "E", H: 6, Bound: 2},
	}, rep.Violations)
}

func TestCheck_RomaniaGoalEstimate(t *testing.T) {
	rep, err := audit.Check(graphOf(t, "romania"), "Bucharest")
	require.NoError(t, err)

	// The bundled table stores 1 for Bucharest itself.
	assert.Equal(t, []audit.Violation{
		{Kind: audit.Overestimate, State: "Bucharest", H: 1, Bound: 0},
	}, rep.Violations)
	assert.True(t, rep.Consistent())
	assert.Equal(t, 20, rep.States)
	assert.Zero(t, rep.Unreachable)
}

func TestCheck_UndirectedChecksBothWays(t *testing.T) {
	g := core.NewGraph(core.WithDirected(false))
	_, err := g.AddEdge("X", "Goal", 1)
	require.NoError(t, err)
	require.NoError(t, g.SetHeuristic("Goal", 5))

	rep, err := audit.Check(g, "Goal")
	require.NoError(t, err)
	assert.Equal(t, []audit.Violation{
		{Kind: audit.Overestimate, State: "Goal", H: 5, Bound: 0},
		{Kind: audit.Inconsistent, State: "Goal", Next: "X", H: 5, Bound: 1},
	}, rep.Violations)
}

func TestCheck_Horizon(t *testing.T) {
	// Exact costs to F: E=1, B=2, A=3, C=3; D cannot reach F at all.
	rep, err := audit.Check(graphOf(t, "small"), "F", audit.WithHorizon(2))
	require.NoError(t, err)

	assert.Equal(t, 2.0, rep.Horizon)
	assert.Equal(t, 3, rep.States)
	assert.Equal(t, 3, rep.Unreachable)
	assert.Equal(t, 6, rep.Edges)
	assert.Equal(t, []audit.Violation{
		{Kind: audit.Overestimate, State: "B", H: 6, Bound: 2},
		{Kind: audit.Inconsistent, State: "A", Next: "C", H: 7, Bound: 6},
		{Kind: audit.Inconsistent, State: "B", Next: "E", H: 6, Bound: 2},
	}, rep.Violations)

	full, err := audit.Check(graphOf(t, "small"), "F")
	require.NoError(t, err)
	assert.True(t, math.IsInf(full.Horizon, 1))

	assert.PanicsWithValue(t, audit.ErrBadHorizon.Error(), func() { audit.WithHorizon(-1) })
}

func TestCheck_Errors(t *testing.T) {
	_, err := audit.Check(nil, "A")
	assert.ErrorIs(t, err, audit.ErrNilGraph)

	_, err = audit.Check(core.NewGraph(), "A")
	assert.ErrorIs(t, err, audit.ErrGoalNotFound)
}
