// File: methods_clone.go
// Role: Cloning and reversal of graph instances.
// Determinism:
//   - Edges are replayed in creation order, so the copy enumerates successors
//     in the same order as the source.
// Concurrency:
//   - Read locks for snapshotting; the source graph is never mutated.

package core

// Clone returns a deep copy: flags, vertices, heuristic table and edges.
// Edge IDs of the copy are renumbered from e1 in the original order.
// Complexity: O(V + E log E)
func (g *Graph) Clone() *Graph {
	return g.rebuild(false)
}

// Reverse returns a copy in which every edge From→To becomes To→From.
// The heuristic table is copied unchanged. For an undirected graph the
// result equals Clone.
// Complexity: O(V + E log E)
func (g *Graph) Reverse() *Graph {
	return g.rebuild(g.directed)
}

func (g *Graph) rebuild(flip bool) *Graph {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	clone := NewGraph(opts...)

	g.muVert.RLock()
	for id := range g.vertices {
		clone.vertices[id] = struct{}{}
	}
	for id, h := range g.heuristic {
		clone.heuristic[id] = h
	}
	g.muVert.RUnlock()

	for _, e := range g.Edges() {
		from, to := e.From, e.To
		if flip {
			from, to = to, from
		}
		// Source edges already passed validation.
		_, _ = clone.AddEdge(from, to, e.Weight)
	}

	return clone
}
