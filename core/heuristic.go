// File: heuristic.go
// Role: Heuristic table: per-state estimate of the remaining cost to one goal.
// Concurrency:
//   - Protected by muVert together with the vertex catalog.

package core

import (
	"math"
	"sort"
)

// SetHeuristic stores the estimate for id, adding the vertex if missing.
// Values are not checked for admissibility here; see package audit.
func (g *Graph) SetHeuristic(id string, h float64) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if h < 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return ErrBadHeuristic
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.vertices[id] = struct{}{}
	g.heuristic[id] = h

	return nil
}

// HeuristicValue returns the stored estimate for id and whether one exists.
func (g *Graph) HeuristicValue(id string) (float64, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	h, ok := g.heuristic[id]

	return h, ok
}

// HeuristicStates returns the IDs that carry an estimate, sorted.
// These are the states offered to a user picking start and goal.
func (g *Graph) HeuristicStates() []string {
	g.muVert.RLock()
	ids := make([]string, 0, len(g.heuristic))
	for id := range g.heuristic {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()
	sort.Strings(ids)

	return ids
}

// Heuristics returns a copy of the whole table.
func (g *Graph) Heuristics() map[string]float64 {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	m := make(map[string]float64, len(g.heuristic))
	for id, h := range g.heuristic {
		m[id] = h
	}

	return m
}
