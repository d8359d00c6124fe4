// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
// Concurrency:
//   - Vertex catalog protected by muVert.

package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	g.vertices[id] = struct{}{}
	g.muVert.Unlock()

	return nil
}

// HasVertex reports whether id is a known vertex.
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns every vertex ID, sorted.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()
	sort.Strings(ids)

	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// RemoveVertex deletes a vertex, its heuristic value and every incident edge.
// Complexity: O(deg(v) + E) in the worst case.
func (g *Graph) RemoveVertex(id string) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}
	delete(g.vertices, id)
	delete(g.heuristic, id)

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	for eid, e := range g.edges {
		if e.From == id || e.To == id {
			g.unlinkEdge(e)
			delete(g.edges, eid)
		}
	}

	return nil
}
