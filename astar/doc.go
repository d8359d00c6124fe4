// Package astar implements A* search over caller-supplied collaborator
// functions.
//
// Overview:
//
//   - FindPath returns a minimum-cost start→goal path, guided by a heuristic.
//   - The engine never touches a graph. It sees three functions only:
//     SuccessorFunc (neighbors), CostFunc (edge weight, +Inf when absent) and
//     HeuristicFunc (estimate to the goal).
//   - States are any comparable type. core.Graph, remote/dynamo.Store and
//     plain closures all plug in.
//
// Ordering:
//
//   - The frontier is a B-tree ordered by (f, seq). seq is a counter bumped on
//     every insertion, so equal f values leave first-in, first-out.
//   - A relaxed node is re-inserted with a fresh seq: it queues behind nodes
//     already waiting at its new f.
//   - Successors are pushed in enumeration order, so a deterministic
//     SuccessorFunc yields a deterministic path.
//
// Node accounting:
//
//   - Nodes live in one arena slice; parent links are int32 indices into it.
//   - Every state owns at most one node. Relaxation updates it in place.
//   - The closed set is a roaring bitmap over arena indices. A closed state is
//     skipped before its edge cost is even asked for.
//
// Collaborator contract:
//
//   - Calls are strictly sequential and never batched.
//   - The heuristic is evaluated once per node. NaN counts as a missing
//     estimate (0); +Inf or NaN edge costs mean "no edge".
//   - Admissibility and non-negative costs are the caller's obligation.
//     Package audit can check a stored heuristic offline.
//
// Errors:
//
//   - "No path" is Result.Found == false with a nil error.
//   - Collaborator failures abort the search as *CollaboratorError
//     (errors.Is(err, ErrCollaborator)).
//   - ErrBudgetExhausted, ctx.Err() and OnExpand errors also abort.
//
// Complexity:
//
//   - Time:  O((V + E) log V) plus collaborator latency.
//   - Space: O(V).
package astar
