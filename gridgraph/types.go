package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBlocked indicates a search endpoint that is a wall or out of bounds.
	ErrBlocked = errors.New("gridgraph: cell is blocked or out of bounds")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell is a grid coordinate and the search state of this package.
type Cell struct {
	X, Y int
}

// ID formats the cell as the vertex ID used by ToGraph: "x,y".
func (c Cell) ID() string { return fmt.Sprintf("%d,%d", c.X, c.Y) }

// Options contains tunable parameters for a Grid.
type Options struct {
	// Threshold is the minimum cell value that can be entered.
	Threshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultOptions returns Threshold=1 (zero cells are walls), Conn=Conn4.
func DefaultOptions() Options {
	return Options{
		Threshold: 1,
		Conn:      Conn4,
	}
}

// Grid is an immutable terrain map.
type Grid struct {
	Width, Height int
	cells         [][]int
	opts          Options
	offsets       [][2]int
	minCost       float64
}
