package gridgraph

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMalformedMap indicates a map file that does not decode or names a bad
// connectivity.
var ErrMalformedMap = errors.New("gridgraph: malformed map")

// Map is the YAML form of a terrain grid:
//
//	conn: 8          # 4 (default) or 8
//	threshold: 1     # cells below this are walls
//	cells:
//	  - [1, 1, 3]
//	  - [0, 1, 1]
type Map struct {
	Conn      int     `yaml:"conn"`
	Threshold int     `yaml:"threshold"`
	Cells     [][]int `yaml:"cells"`
}

// Decode reads a Map strictly and builds its Grid.
func Decode(r io.Reader) (*Grid, error) {
	var m Map
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMap, err)
	}

	opts := Options{Threshold: m.Threshold, Conn: Conn4}
	switch m.Conn {
	case 0, 4:
	case 8:
		opts.Conn = Conn8
	default:
		return nil, fmt.Errorf("%w: conn %d (want 4 or 8)", ErrMalformedMap, m.Conn)
	}

	return New(m.Cells, opts)
}

// ParseCell reads "x,y".
func ParseCell(s string) (Cell, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Cell{}, fmt.Errorf("gridgraph: cell %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Cell{}, fmt.Errorf("gridgraph: cell %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Cell{}, fmt.Errorf("gridgraph: cell %q: %w", s, err)
	}

	return Cell{X: x, Y: y}, nil
}
