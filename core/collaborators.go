// File: collaborators.go
// Role: Method values that satisfy the astar collaborator contracts.
// Policy:
//   - Total functions: unknown states are dead ends, never errors.
//   - Missing edge → +Inf, missing estimate → 0.

package core

import (
	"context"
	"math"
)

// Successors lists the states reachable from id in one step.
// The error is always nil; the signature matches astar.SuccessorFunc[string].
func (g *Graph) Successors(_ context.Context, id string) ([]string, error) {
	return g.Neighbors(id), nil
}

// Cost returns the weight of from→to, or +Inf when there is no such edge.
func (g *Graph) Cost(_ context.Context, from, to string) (float64, error) {
	if w, ok := g.Weight(from, to); ok {
		return w, nil
	}

	return math.Inf(1), nil
}

// Heuristic returns the stored estimate for id, or 0 when none is stored.
func (g *Graph) Heuristic(_ context.Context, id string) (float64, error) {
	h, _ := g.HeuristicValue(id)

	return h, nil
}
