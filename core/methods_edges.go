// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Weight/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges in insertion order (numeric order of Edge.ID).
//   - Out-arcs of a vertex keep insertion order, so successor enumeration is stable.
// Concurrency:
//   - Mutations under muEdgeAdj write lock, queries under its read lock.

package core

import (
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix gives stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to with the given weight and returns its ID.
// Both endpoints are added as vertices. In an undirected graph the edge is
// also traversable to→from.
//
// Errors:
//   - ErrEmptyVertexID if either endpoint is "".
//   - ErrBadWeight if weight is negative, NaN or ±Inf.
//   - ErrLoopNotAllowed if from == to without WithLoops.
//   - ErrMultiEdgeNotAllowed if from→to (or to→from when undirected) exists.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if _, dup := g.index[from][to]; dup {
		return "", ErrMultiEdgeNotAllowed
	}
	if !g.directed {
		if _, dup := g.index[to][from]; dup {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	e := &Edge{ID: nextEdgeID(g), From: from, To: to, Weight: weight}
	g.edges[e.ID] = e
	g.linkArc(from, to, e)
	if !g.directed && from != to {
		g.linkArc(to, from, e)
	}

	return e.ID, nil
}

// RemoveEdge deletes one edge (and its mirror in undirected graphs).
// Complexity: O(deg(from) + deg(to)).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	g.unlinkEdge(e)
	delete(g.edges, eid)

	return nil
}

// HasEdge reports whether from→to is traversable.
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.index[from][to]

	return ok
}

// Weight returns the weight of from→to and whether that edge exists.
func (g *Graph) Weight(from, to string) (float64, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.index[from][to]
	if !ok {
		return 0, false
	}

	return e.Weight, true
}

// Neighbors returns the IDs reachable from id in one step, in insertion order.
// Unknown vertices have no neighbors.
// Complexity: O(deg(id))
func (g *Graph) Neighbors(id string) []string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	arcs := g.out[id]
	if len(arcs) == 0 {
		return nil
	}
	ids := make([]string, len(arcs))
	for i, a := range arcs {
		ids[i] = a.to
	}

	return ids
}

// Edges returns copies of all edges ordered by creation.
// Complexity: O(E log E)
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	list := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		list = append(list, *e)
	}
	g.muEdgeAdj.RUnlock()
	sort.Slice(list, func(i, j int) bool { return edgeSeq(list[i].ID) < edgeSeq(list[j].ID) })

	return list
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// linkArc records from→to for e. Caller holds muEdgeAdj.
func (g *Graph) linkArc(from, to string, e *Edge) {
	g.out[from] = append(g.out[from], arc{to: to, edge: e})
	if g.index[from] == nil {
		g.index[from] = make(map[string]*Edge)
	}
	g.index[from][to] = e
}

// unlinkEdge removes both arcs of e. Caller holds muEdgeAdj.
func (g *Graph) unlinkEdge(e *Edge) {
	g.unlinkArc(e.From, e.To)
	if !g.directed {
		g.unlinkArc(e.To, e.From)
	}
}

func (g *Graph) unlinkArc(from, to string) {
	arcs := g.out[from]
	for i, a := range arcs {
		if a.to == to {
			g.out[from] = append(arcs[:i:i], arcs[i+1:]...)
			break
		}
	}
	if len(g.out[from]) == 0 {
		delete(g.out, from)
	}
	delete(g.index[from], to)
	if len(g.index[from]) == 0 {
		delete(g.index, from)
	}
}

// nextEdgeID returns a fresh "e<N>" identifier.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 21)
	buf = append(buf, edgeIDPrefix)

	return string(strconv.AppendUint(buf, n, 10))
}

// edgeSeq parses the numeric part of an edge ID; malformed IDs sort last.
func edgeSeq(id string) uint64 {
	if len(id) < 2 || id[0] != edgeIDPrefix {
		return math.MaxUint64
	}
	n, err := strconv.ParseUint(id[1:], 10, 64)
	if err != nil {
		return math.MaxUint64
	}

	return n
}
