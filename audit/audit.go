package audit

import (
	"fmt"
	"math"

	"github.com/katalvlaran/estrela/core"
	"github.com/katalvlaran/estrela/dijkstra"
)

// Check compares the heuristic stored in g against exact costs to goal.
//
// Exact cost-to-go comes from one Dijkstra run on g.Reverse() from goal.
// Violations are listed overestimates first, in vertex order, then
// inconsistent edges in creation order. Missing estimates count as 0, matching
// core.Graph.Heuristic.
//
// WithHorizon caps the reverse search: states whose exact cost exceeds the
// horizon are counted as Unreachable and skip the admissibility check. Edge
// consistency needs no exact costs and is always checked in full.
//
// Complexity: O((V + E) log V).
func Check(g *core.Graph, goal string, opts ...Option) (Report, error) {
	if g == nil {
		return Report{}, ErrNilGraph
	}
	if !g.HasVertex(goal) {
		return Report{}, fmt.Errorf("%w: %q", ErrGoalNotFound, goal)
	}

	o := options{horizon: math.Inf(1)}
	for _, opt := range opts {
		opt(&o)
	}

	dopts := []dijkstra.Option{dijkstra.Source(goal)}
	if !math.IsInf(o.horizon, 1) {
		dopts = append(dopts, dijkstra.WithMaxDistance(o.horizon))
	}
	toGoal, _, err := dijkstra.Dijkstra(g.Reverse(), dopts...)
	if err != nil {
		return Report{}, fmt.Errorf("audit: exact costs to %q: %w", goal, err)
	}

	rep := Report{Goal: goal, Horizon: o.horizon}
	h := func(s string) float64 {
		v, _ := g.HeuristicValue(s)
		return v
	}

	for _, s := range g.Vertices() {
		exact := toGoal[s]
		if math.IsInf(exact, 1) {
			rep.Unreachable++
			continue
		}
		rep.States++
		if hs := h(s); hs > exact {
			rep.Violations = append(rep.Violations, Violation{Kind: Overestimate, State: s, H: hs, Bound: exact})
		}
	}

	for _, e := range g.Edges() {
		rep.Edges++
		checkEdge(&rep, e.From, e.To, e.Weight, h)
		if !g.Directed() && e.From != e.To {
			checkEdge(&rep, e.To, e.From, e.Weight, h)
		}
	}

	return rep, nil
}

func checkEdge(rep *Report, u, v string, w float64, h func(string) float64) {
	bound := w + h(v)
	if hu := h(u); hu > bound {
		rep.Violations = append(rep.Violations, Violation{Kind: Inconsistent, State: u, Next: v, H: hu, Bound: bound})
	}
}
