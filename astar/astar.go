package astar

import (
	"context"
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// FindPath searches for a minimum-cost path from start to goal.
//
// successors, heuristic and cost are called strictly sequentially, at most
// once per visited edge or created node; no call is batched or prefetched.
// The heuristic must be admissible and edge costs non-negative: neither is
// checked here, and violating them may yield a suboptimal path.
//
// Returns:
//
//   - Result with Found=true and the start→goal path when the goal is reached.
//   - Result with Found=false and a nil error when the frontier is exhausted.
//   - ErrBudgetExhausted when WithMaxExpansions is hit first.
//   - a *CollaboratorError (errors.Is ErrCollaborator) when an injected
//     function fails; the search is abandoned at that point.
//   - ctx.Err() wrapped, when ctx is done before an expansion.
//
// Complexity:
//
//   - Time:  O((V + E) log V) collaborator calls aside.
//   - Space: O(V) nodes; the frontier never holds more than one entry per state.
func FindPath[S comparable](
	ctx context.Context,
	start, goal S,
	successors SuccessorFunc[S],
	heuristic HeuristicFunc[S],
	cost CostFunc[S],
	opts ...Option[S],
) (Result[S], error) {
	if successors == nil || heuristic == nil || cost == nil {
		return Result[S]{}, ErrNilCollaborator
	}
	var cfg Options[S]
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner[S]{
		successors: successors,
		heuristic:  heuristic,
		cost:       cost,
		options:    cfg,
		goal:       goal,
		index:      make(map[S]uint32),
		open:       newFrontier(),
		closed:     roaring.New(),
	}
	if err := r.init(ctx, start); err != nil {
		return r.result(), err
	}

	return r.process(ctx)
}

// node is a SearchNode. parent indexes runner.nodes, -1 for the start node.
type node[S comparable] struct {
	state  S
	g, h   float64
	f      float64
	parent int32
	seq    uint64 // frontier insertion number while open
}

// runner holds the mutable state of a single FindPath execution.
type runner[S comparable] struct {
	successors SuccessorFunc[S]
	heuristic  HeuristicFunc[S]
	cost       CostFunc[S]
	options    Options[S]
	goal       S

	nodes  []node[S]       // arena; parent links are indices into it
	index  map[S]uint32    // state → its one live node
	open   *frontier       // (f, seq) ordered open set
	closed *roaring.Bitmap // indices of finalized nodes

	expanded int
	relaxed  int
}

// init creates the start node with g=0 and pushes it.
func (r *runner[S]) init(ctx context.Context, start S) error {
	h, err := r.estimate(ctx, start)
	if err != nil {
		return err
	}
	r.insert(start, 0, h, -1)

	return nil
}

// process is the main loop: pop min f, goal test, close, expand.
func (r *runner[S]) process(ctx context.Context) (Result[S], error) {
	for r.open.len() > 0 {
		if err := ctx.Err(); err != nil {
			return r.result(), fmt.Errorf("astar: search aborted: %w", err)
		}

		item, _ := r.open.pop()
		cur := &r.nodes[item.idx]

		// 1) Goal test happens before expansion, so start==goal costs nothing.
		if cur.state == r.goal {
			res := r.result()
			res.Found = true
			res.Cost = cur.g
			res.Path = r.reconstruct(item.idx)
			return res, nil
		}

		if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
			return r.result(), ErrBudgetExhausted
		}

		// 2) Close the state. It never re-enters the frontier.
		r.closed.Add(item.idx)
		r.expanded++
		if r.options.OnExpand != nil {
			if err := r.options.OnExpand(cur.state, cur.g); err != nil {
				return r.result(), err
			}
		}

		if err := r.expand(ctx, item.idx); err != nil {
			return r.result(), err
		}
	}

	return r.result(), nil
}

// expand relaxes every outgoing edge of the closed node at idx.
func (r *runner[S]) expand(ctx context.Context, idx uint32) error {
	state, g := r.nodes[idx].state, r.nodes[idx].g
	next, err := r.successors(ctx, state)
	if err != nil {
		return newCollaboratorError(OpSuccessors, state, err)
	}

	for _, s := range next {
		known, seen := r.index[s]
		if seen && r.closed.Contains(known) {
			continue
		}

		w, err := r.cost(ctx, state, s)
		if err != nil {
			return newCollaboratorError(OpCost, state, err)
		}
		tentative := g + w
		// Absent edges come back as +Inf; NaN is treated the same way.
		if math.IsInf(tentative, 1) || math.IsNaN(tentative) {
			continue
		}

		if !seen {
			h, err := r.estimate(ctx, s)
			if err != nil {
				return err
			}
			r.insert(s, tentative, h, int32(idx))
			continue
		}

		n := &r.nodes[known]
		if n.g <= tentative {
			continue
		}
		// Relaxation: same node, new g and parent, h reused.
		r.open.remove(n.f, n.seq)
		n.g = tentative
		n.f = tentative + n.h
		n.parent = int32(idx)
		n.seq = r.open.push(known, n.f)
		r.relaxed++
		if r.options.OnRelax != nil {
			r.options.OnRelax(s, tentative)
		}
	}

	return nil
}

// insert appends a fresh open node to the arena and the frontier.
func (r *runner[S]) insert(s S, g, h float64, parent int32) {
	idx := uint32(len(r.nodes))
	r.nodes = append(r.nodes, node[S]{state: s, g: g, h: h, f: g + h, parent: parent})
	r.nodes[idx].seq = r.open.push(idx, g+h)
	r.index[s] = idx
}

// estimate calls the heuristic once for a new node. NaN counts as missing (0).
func (r *runner[S]) estimate(ctx context.Context, s S) (float64, error) {
	h, err := r.heuristic(ctx, s)
	if err != nil {
		return 0, newCollaboratorError(OpHeuristic, s, err)
	}
	if math.IsNaN(h) {
		return 0, nil
	}

	return h, nil
}

// reconstruct walks parent links from idx back to the start and reverses.
func (r *runner[S]) reconstruct(idx uint32) []S {
	var path []S
	for i := int32(idx); i >= 0; i = r.nodes[i].parent {
		path = append(path, r.nodes[i].state)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

func (r *runner[S]) result() Result[S] {
	return Result[S]{
		Expanded:  r.expanded,
		Generated: len(r.nodes),
		Relaxed:   r.relaxed,
	}
}
