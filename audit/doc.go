// Package audit checks a stored heuristic against the graph it guides.
//
// The search engine trusts its heuristic: an overestimate silently yields a
// suboptimal path. Check makes that trust verifiable offline, by computing
// exact costs to the goal with package dijkstra and comparing them with the
// estimates held by core.Graph.
package audit
