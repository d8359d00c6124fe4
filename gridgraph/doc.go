// Package gridgraph treats a 2D terrain grid as a search space for astar.
//
// What:
//
//   - Grid wraps a rectangular [][]int. A cell value is the price of entering
//     that cell; values below Options.Threshold are walls.
//   - Successors, Cost and Heuristic plug straight into astar.FindPath with
//     Cell as the state type.
//   - ToGraph exports the same space as a *core.Graph with a stored
//     heuristic, so it can be saved as a dataset or checked by package audit.
//
// Moves:
//
//   - Conn4: N, E, S, W. Step length 1.
//   - Conn8: adds diagonals of length √2. A diagonal may not cut a corner:
//     both orthogonal cells it passes must be open.
//   - Step cost = step length × value of the entered cell.
//
// Heuristic:
//
//   - Manhattan (Conn4) or octile (Conn8) distance times the cheapest open
//     cell value. Both are consistent, so the first goal pop is optimal.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows differ in length.
//   - ErrBlocked: a search endpoint is a wall or off the grid.
//
// Complexity:
//
//   - New:     O(W×H) time and memory.
//   - ToGraph: O(W×H×d) with d = 4 or 8.
package gridgraph
