// Package core provides a thread-safe, in-memory weighted state graph with a
// per-state heuristic table: the storage side of a route search.
//
// The Graph G = (V,E) supports:
//
//   - Directed (default) or undirected edges (WithDirected)
//   - Self-loops (WithLoops)
//   - Non-negative, finite float64 weights (validated on insertion)
//   - One heuristic value per state (SetHeuristic)
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices+heuristic (muVert) and
//     edges+adjacency (muEdgeAdj)
//
// Collaborator methods:
//
//	Successors(ctx, id) ([]string, error)   // out-neighbors in insertion order; nil for unknown ids
//	Cost(ctx, from, to) (float64, error)    // edge weight, +Inf when absent
//	Heuristic(ctx, id) (float64, error)     // stored estimate, 0 when absent
//
// Their method values plug straight into astar.FindPath:
//
//	res, err := astar.FindPath(ctx, "Arad", "Bucharest", g.Successors, g.Heuristic, g.Cost)
//
// Core Methods:
//
//	AddVertex(id) error                      // O(1)
//	RemoveVertex(id) error                   // O(deg(v)+E)
//	AddEdge(from, to, weight) (string, error)// O(1)
//	RemoveEdge(edgeID) error                 // O(deg)
//	HasEdge(from, to) bool                   // O(1)
//	Weight(from, to) (float64, bool)         // O(1)
//	Neighbors(id) []string                   // O(deg)
//	Vertices() []string                      // O(V log V), sorted
//	Edges() []Edge                           // O(E log E), creation order
//	SetHeuristic(id, h) error                // O(1)
//	HeuristicStates() []string               // O(V log V), sorted
//	Clone() / Reverse() *Graph               // O(V+E log E)
//
// Errors:
//
//	ErrEmptyVertexID, ErrVertexNotFound, ErrEdgeNotFound, ErrBadWeight,
//	ErrBadHeuristic, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
package core
