package gridgraph

import (
	"context"
	"math"

	"github.com/katalvlaran/estrela/astar"
	"github.com/katalvlaran/estrela/core"
)

var (
	orthogonal = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	diagonal   = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// New constructs a Grid from a non-empty, rectangular 2D slice indexed
// values[y][x]. The input is deep-copied.
// Non-positive values are walls regardless of opts.Threshold.
func New(values [][]int, opts Options) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	gr := &Grid{Width: w, Height: h, opts: opts, offsets: orthogonal}
	if opts.Conn == Conn8 {
		gr.offsets = diagonal
	}
	gr.cells = make([][]int, h)
	for y := range values {
		gr.cells[y] = append([]int(nil), values[y]...)
		for x, v := range values[y] {
			if !gr.Open(Cell{x, y}) {
				continue
			}
			if gr.minCost == 0 || float64(v) < gr.minCost {
				gr.minCost = float64(v)
			}
		}
	}

	return gr, nil
}

// InBounds reports whether c lies within the grid.
func (gr *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < gr.Width && c.Y >= 0 && c.Y < gr.Height
}

// Open reports whether c is inside the grid and can be entered.
func (gr *Grid) Open(c Cell) bool {
	if !gr.InBounds(c) {
		return false
	}
	v := gr.cells[c.Y][c.X]

	return v > 0 && v >= gr.opts.Threshold
}

// step returns the length of the move a→b, or 0 when it is not a legal move.
func (gr *Grid) step(a, b Cell) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	if !gr.Open(a) || !gr.Open(b) {
		return 0
	}
	switch {
	case abs(dx)+abs(dy) == 1:
		return 1
	case gr.opts.Conn == Conn8 && abs(dx) == 1 && abs(dy) == 1:
		// no corner cutting
		if !gr.Open(Cell{a.X + dx, a.Y}) || !gr.Open(Cell{a.X, a.Y + dy}) {
			return 0
		}
		return math.Sqrt2
	}

	return 0
}

// Successors lists the legal moves from c, clockwise from north.
// The signature matches astar.SuccessorFunc[Cell].
func (gr *Grid) Successors(_ context.Context, c Cell) ([]Cell, error) {
	out := make([]Cell, 0, len(gr.offsets))
	for _, d := range gr.offsets {
		n := Cell{c.X + d[0], c.Y + d[1]}
		if gr.step(c, n) > 0 {
			out = append(out, n)
		}
	}

	return out, nil
}

// Cost returns step length × value of the entered cell, or +Inf for an
// illegal move.
func (gr *Grid) Cost(_ context.Context, from, to Cell) (float64, error) {
	s := gr.step(from, to)
	if s == 0 {
		return math.Inf(1), nil
	}

	return s * float64(gr.cells[to.Y][to.X]), nil
}

// Heuristic returns a consistent estimate of the cost from any cell to goal.
func (gr *Grid) Heuristic(goal Cell) astar.HeuristicFunc[Cell] {
	return func(_ context.Context, c Cell) (float64, error) {
		return gr.estimate(c, goal), nil
	}
}

func (gr *Grid) estimate(c, goal Cell) float64 {
	dx, dy := float64(abs(goal.X-c.X)), float64(abs(goal.Y-c.Y))
	if gr.opts.Conn == Conn8 {
		return gr.minCost * (math.Max(dx, dy) + (math.Sqrt2-1)*math.Min(dx, dy))
	}

	return gr.minCost * (dx + dy)
}

// FindPath runs astar from start to goal using the grid's own collaborators.
func (gr *Grid) FindPath(ctx context.Context, start, goal Cell, opts ...astar.Option[Cell]) (astar.Result[Cell], error) {
	if !gr.Open(start) || !gr.Open(goal) {
		return astar.Result[Cell]{}, ErrBlocked
	}

	return astar.FindPath(ctx, start, goal, gr.Successors, gr.Heuristic(goal), gr.Cost, opts...)
}

// ToGraph exports every open cell as a vertex "x,y" and every legal move as
// a directed edge, with the heuristic toward goal stored per vertex.
// Walls are omitted.
func (gr *Grid) ToGraph(goal Cell) (*core.Graph, error) {
	if !gr.Open(goal) {
		return nil, ErrBlocked
	}
	g := core.NewGraph(core.WithDirected(true))
	ctx := context.Background()
	for y := 0; y < gr.Height; y++ {
		for x := 0; x < gr.Width; x++ {
			c := Cell{x, y}
			if !gr.Open(c) {
				continue
			}
			if err := g.SetHeuristic(c.ID(), gr.estimate(c, goal)); err != nil {
				return nil, err
			}
			next, _ := gr.Successors(ctx, c)
			for _, n := range next {
				w, _ := gr.Cost(ctx, c, n)
				if _, err := g.AddEdge(c.ID(), n.ID(), w); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
