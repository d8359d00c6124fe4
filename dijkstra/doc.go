// Package dijkstra implements Dijkstra's shortest-path algorithm on core.Graph.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - Supports optional path reconstruction and a distance cap (audit horizons).
//
// Role in this module:
//
//   - Uniform-cost baseline: astar results are checked against it for optimality.
//   - Exact cost-to-go: run on core.Graph.Reverse() from a goal, it yields the true
//     remaining cost of every state, which package audit compares to heuristic values.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E); O(E) worst-case heap entries under “lazy decrease-key”.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource, ErrNilGraph, ErrVertexNotFound.
//   - ErrBadMaxDistance (raised via panic by WithMaxDistance).
//
// Thread safety:
//
//   - core.Graph is safe for concurrent use, but a graph mutated during a run
//     yields distances for no single snapshot. Synchronize externally if needed.
package dijkstra
