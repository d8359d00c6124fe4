// Package render turns search results into text and Graphviz documents.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/estrela/core"
)

// NoPath is printed when the frontier is exhausted.
const NoPath = "no path found"

// Highlight colors of the path drawn by DOT.
const (
	PathNodeColor = "orange"
	PathEdgeColor = "red"
)

// PathText joins states with arrows: "Arad -> Sibiu -> Bucharest".
func PathText(path []string) string {
	return strings.Join(path, " -> ")
}

// Found is the one-line report of a successful search.
func Found(path []string) string {
	return "Path found: " + PathText(path)
}

// DOT renders every vertex and edge of g, labels edges with their weight and
// highlights path. title becomes the graph label. Self-loops are omitted.
func DOT(g *core.Graph, path []string, title string) ([]byte, error) {
	onPath := make(map[string]bool, len(path))
	pathArcs := make(map[[2]string]bool, len(path))
	for i, s := range path {
		onPath[s] = true
		if i > 0 {
			pathArcs[[2]string{path[i-1], s}] = true
			if !g.Directed() {
				pathArcs[[2]string{s, path[i-1]}] = true
			}
		}
	}

	dg := &dotGraph{DirectedGraph: simple.NewDirectedGraph(), title: title, directed: g.Directed()}
	nodes := make(map[string]*dotNode)
	for i, id := range g.Vertices() {
		n := &dotNode{id: int64(i), name: id, onPath: onPath[id]}
		nodes[id] = n
		dg.AddNode(n)
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		dg.SetEdge(&dotEdge{
			from:   nodes[e.From],
			to:     nodes[e.To],
			weight: e.Weight,
			onPath: pathArcs[[2]string{e.From, e.To}],
		})
	}

	out, err := dot.Marshal(dg, "estrela", "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render: dot: %w", err)
	}

	return out, nil
}

type attrs []encoding.Attribute

func (a attrs) Attributes() []encoding.Attribute { return a }

// dotGraph adds graph-level attributes to a simple.DirectedGraph. Undirected
// sources are drawn without arrowheads.
type dotGraph struct {
	*simple.DirectedGraph
	title    string
	directed bool
}

func (g *dotGraph) DOTAttributers() (graph, node, edge encoding.Attributer) {
	ga := attrs{{Key: "rankdir", Value: "LR"}}
	if g.title != "" {
		ga = append(ga, encoding.Attribute{Key: "label", Value: g.title}, encoding.Attribute{Key: "labelloc", Value: "t"})
	}
	ea := attrs{}
	if !g.directed {
		ea = append(ea, encoding.Attribute{Key: "dir", Value: "none"})
	}

	return ga, attrs{{Key: "shape", Value: "ellipse"}}, ea
}

type dotNode struct {
	id     int64
	name   string
	onPath bool
}

func (n *dotNode) ID() int64      { return n.id }
func (n *dotNode) DOTID() string  { return n.name }
func (n *dotNode) String() string { return n.name }

func (n *dotNode) Attributes() []encoding.Attribute {
	if !n.onPath {
		return nil
	}
	return []encoding.Attribute{
		{Key: "style", Value: "filled"},
		{Key: "fillcolor", Value: PathNodeColor},
	}
}

type dotEdge struct {
	from, to *dotNode
	weight   float64
	onPath   bool
}

func (e *dotEdge) From() graph.Node { return e.from }
func (e *dotEdge) To() graph.Node   { return e.to }

func (e *dotEdge) ReversedEdge() graph.Edge {
	return &dotEdge{from: e.to, to: e.from, weight: e.weight, onPath: e.onPath}
}

func (e *dotEdge) Attributes() []encoding.Attribute {
	a := []encoding.Attribute{{Key: "label", Value: strconv.FormatFloat(e.weight, 'g', -1, 64)}}
	if e.onPath {
		a = append(a,
			encoding.Attribute{Key: "color", Value: PathEdgeColor},
			encoding.Attribute{Key: "penwidth", Value: "2"},
		)
	}
	return a
}
